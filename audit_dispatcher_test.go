package adminkit

import (
	"context"
	"testing"
	"time"
)

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := NewChannelSink(4)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 4}, sink)
	defer d.Close()

	d.Emit(AuditEvent{EventType: AuditLoginSuccess, UserID: "u1", Success: true})

	select {
	case ev := <-sink.Events():
		if ev.EventType != AuditLoginSuccess || ev.UserID != "u1" {
			t.Fatalf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("event never reached the sink")
	}
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	sink := NewChannelSink(8)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 8}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(AuditEvent{EventType: AuditLogout})
	}
	d.Close()

	delivered := 0
	for {
		select {
		case <-sink.Events():
			delivered++
		default:
			if delivered != 5 {
				t.Fatalf("delivered = %d, want all 5 drained", delivered)
			}
			return
		}
	}
}

func TestDispatcherCountsDrops(t *testing.T) {
	// A blocking sink keeps the worker busy so the buffer fills.
	block := make(chan struct{})
	sink := blockingSink{release: block}

	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1}, sink)
	defer d.Close()

	// First event occupies the worker, second fills the buffer, the rest drop.
	for i := 0; i < 10; i++ {
		d.Emit(AuditEvent{EventType: AuditLoginFailure})
	}
	close(block)

	if d.Dropped() == 0 {
		t.Fatal("no drops counted under backpressure")
	}
}

func TestDisabledDispatcherIsNil(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: false}, nil)
	if d != nil {
		t.Fatal("disabled audit config must yield a nil dispatcher")
	}

	// All operations on the nil dispatcher are no-ops.
	d.Emit(AuditEvent{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reported drops")
	}
}

func TestEmitAfterCloseIsDiscarded(t *testing.T) {
	sink := NewChannelSink(4)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 4}, sink)
	d.Close()

	d.Emit(AuditEvent{EventType: AuditLogout})

	select {
	case ev := <-sink.Events():
		t.Fatalf("event %+v delivered after Close", ev)
	default:
	}
}

type blockingSink struct {
	release <-chan struct{}
}

func (s blockingSink) Emit(ctx context.Context, event AuditEvent) {
	<-s.release
}
