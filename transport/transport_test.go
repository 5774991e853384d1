package transport

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tokenbrush/adminkit/session"
)

func TestRoundTripInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	reg := session.NewRegistry()
	reg.SetAccessToken("tok-abc")
	client := NewClient(nil, reg)

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer tok-abc")
	}
}

func TestRoundTripSkipsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
	}))
	defer srv.Close()

	client := NewClient(nil, session.NewRegistry())
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if hasAuth {
		t.Fatalf("Authorization = %q, want header absent", gotAuth)
	}
}

func TestRoundTripKeepsExplicitHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	reg := session.NewRegistry()
	reg.SetAccessToken("registry-token")
	client := NewClient(nil, reg)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Authorization", "Bearer caller-token")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer caller-token" {
		t.Fatalf("Authorization = %q, want caller header preserved", gotAuth)
	}
}

func TestRoundTripDoesNotMutateCallerRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	reg := session.NewRegistry()
	reg.SetAccessToken("tok")
	client := NewClient(nil, reg)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()

	if _, ok := req.Header["Authorization"]; ok {
		t.Fatal("caller's request gained an Authorization header")
	}
}

func TestRoundTripReportsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"expired"}`)
	}))
	defer srv.Close()

	reg := session.NewRegistry()
	reg.SetAccessToken("stale")
	var triggered int
	reg.OnUnauthorized(func() { triggered++ })

	client := NewClient(nil, reg)
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 passed through", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "expired") {
		t.Fatalf("body = %q, want original payload", body)
	}
	if triggered != 1 {
		t.Fatalf("unauthorized handler ran %d times, want 1", triggered)
	}
}

func TestRoundTripIgnoresOtherErrorStatuses(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		reg := session.NewRegistry()
		var triggered int
		reg.OnUnauthorized(func() { triggered++ })

		client := NewClient(nil, reg)
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("Get (%d): %v", status, err)
		}
		resp.Body.Close()
		srv.Close()

		if triggered != 0 {
			t.Fatalf("status %d triggered the unauthorized handler", status)
		}
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestRoundTripPassesTransportErrors(t *testing.T) {
	reg := session.NewRegistry()
	var triggered int
	reg.OnUnauthorized(func() { triggered++ })

	rt := New(failingTransport{}, reg)
	req, _ := http.NewRequest(http.MethodGet, "http://unreachable.invalid/", nil)

	if _, err := rt.RoundTrip(req); err == nil {
		t.Fatal("RoundTrip = nil error, want transport failure")
	}
	if triggered != 0 {
		t.Fatal("network error must not count as unauthorized")
	}
}
