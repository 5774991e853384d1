package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, srv.Client(), "tokenbrush-admin")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewClient("/just/a/path", nil, ""); err == nil {
		t.Fatal("NewClient accepted a relative base URL")
	}
}

func TestDoSendsAppNameHeader(t *testing.T) {
	var gotHeader string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-App-Name")
		io.WriteString(w, `{"success":true,"data":[]}`)
	})

	if _, err := client.do(context.Background(), http.MethodGet, "/operations", nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotHeader != "tokenbrush-admin" {
		t.Fatalf("X-App-Name = %q, want tokenbrush-admin", gotHeader)
	}
}

func TestDoUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"status":200,"message":"ok","data":{"id":"x1"}}`)
	})

	data, err := client.do(context.Background(), http.MethodGet, "/thing", nil, nil)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if string(data) != `{"id":"x1"}` {
		t.Fatalf("unwrapped data = %s, want inner object", data)
	}
}

func TestDoPassesBareBodyThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"x1"}]`)
	})

	data, err := client.do(context.Background(), http.MethodGet, "/thing", nil, nil)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if string(data) != `[{"id":"x1"}]` {
		t.Fatalf("data = %s, want bare array untouched", data)
	}
}

func TestDoReturnsTypedErrorWithMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"success":false,"message":"duplicate email"}`)
	})

	_, err := client.do(context.Background(), http.MethodPost, "/admin/users", nil, map[string]string{})
	if err == nil {
		t.Fatal("do = nil error, want conflict")
	}
	if !IsStatus(err, http.StatusConflict) {
		t.Fatalf("IsStatus(409) = false for %v", err)
	}

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Message != "duplicate email" {
		t.Fatalf("message = %q, want envelope message", apiErr.Message)
	}
}

func TestDoJoinsBasePathAndEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"data":[]}`)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL+"/api/", srv.Client(), "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.do(context.Background(), http.MethodGet, "/hints", nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotPath != "/api/hints" {
		t.Fatalf("request path = %q, want /api/hints", gotPath)
	}
}
