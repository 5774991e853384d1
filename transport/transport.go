package transport

import (
	"net/http"

	"github.com/tokenbrush/adminkit/session"
)

// RoundTripper decorates a base [http.RoundTripper] with bearer-token
// injection and 401 detection.
type RoundTripper struct {
	base     http.RoundTripper
	registry *session.Registry
}

// New creates a RoundTripper bound to registry. A nil base falls back to
// [http.DefaultTransport].
func New(base http.RoundTripper, registry *session.Registry) *RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RoundTripper{base: base, registry: registry}
}

// NewClient wraps client (or a fresh [http.Client] when nil) so that its
// transport injects the registry token and reports 401 responses.
func NewClient(client *http.Client, registry *session.Registry) *http.Client {
	if client == nil {
		client = &http.Client{}
	}
	wrapped := *client
	wrapped.Transport = New(client.Transport, registry)
	return &wrapped
}

// RoundTrip implements [http.RoundTripper]. The request is cloned before
// mutation, as the contract requires. An Authorization header already
// present on the request is left alone.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := rt.registry.AccessToken(); token != "" && req.Header.Get("Authorization") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := rt.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		rt.registry.TriggerUnauthorized()
	}
	return resp, nil
}
