package session

import "sync"

// Registry is the process-wide holder of the current access token and of at
// most one unauthorized callback.
//
// Registry instances are intended to be constructed once during
// initialization and shared; all methods are safe for concurrent use.
type Registry struct {
	mu           sync.Mutex
	accessToken  string
	unauthorized func()
}

// NewRegistry creates an empty registry: no token, no callback.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetAccessToken overwrites the current token unconditionally
// (last-write-wins). An empty string clears it.
func (r *Registry) SetAccessToken(token string) {
	r.mu.Lock()
	r.accessToken = token
	r.mu.Unlock()
}

// AccessToken returns the current token, or the empty string when none is
// set.
func (r *Registry) AccessToken() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accessToken
}

// OnUnauthorized registers cb as the unauthorized handler. Only one handler
// is held at a time; the last registration wins. A nil cb removes the
// handler.
func (r *Registry) OnUnauthorized(cb func()) {
	r.mu.Lock()
	r.unauthorized = cb
	r.mu.Unlock()
}

// TriggerUnauthorized invokes the registered handler, if any. Calling it
// before a handler has been registered is a no-op. The handler runs outside
// the registry lock so it may safely call back into the registry.
func (r *Registry) TriggerUnauthorized() {
	r.mu.Lock()
	cb := r.unauthorized
	r.mu.Unlock()

	if cb != nil {
		cb()
	}
}
