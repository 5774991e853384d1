package adminkit

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/tokenbrush/adminkit/api"
	"github.com/tokenbrush/adminkit/session"
	"github.com/tokenbrush/adminkit/store"
)

// Controller owns the console's authentication state machine. It is the only
// writer of session state; every transition flows through Hydrate, Login,
// Logout, or the forced-logout path triggered by a 401 response.
//
// Controller instances are intended to be constructed via [Builder.Build]
// and shared; all methods are safe for concurrent use.
type Controller struct {
	config     Config
	registry   *session.Registry
	store      store.Store
	navigator  Navigator
	authAPI    AuthAPI
	api        *api.Client
	httpClient *http.Client
	audit      *auditDispatcher
	metrics    *Metrics

	mu    sync.Mutex
	state Session

	closed atomic.Bool
}

// Session describes the session operation and its observable behavior.
//
// The returned value is a deep copy; mutating it does not affect the
// controller.
func (c *Controller) Session() Session {
	if c == nil {
		return Session{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.state
	out.User = cloneUser(c.state.User)
	return out
}

// Status describes the status operation and its observable behavior.
func (c *Controller) Status() Status {
	if c == nil {
		return StatusIdle
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status
}

// CurrentUser describes the currentuser operation and its observable behavior.
//
// CurrentUser returns nil when no user is signed in.
func (c *Controller) CurrentUser() *User {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneUser(c.state.User)
}

// AccessToken describes the accesstoken operation and its observable behavior.
func (c *Controller) AccessToken() string {
	if c == nil {
		return ""
	}
	return c.registry.AccessToken()
}

// Registry describes the registry operation and its observable behavior.
func (c *Controller) Registry() *session.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// HTTPClient returns the authenticated HTTP client: token injection and 401
// interception are already wired in.
func (c *Controller) HTTPClient() *http.Client {
	if c == nil {
		return nil
	}
	return c.httpClient
}

// API returns the backend client sharing this controller's authenticated
// transport.
func (c *Controller) API() *api.Client {
	if c == nil {
		return nil
	}
	return c.api
}

// Metrics describes the metrics operation and its observable behavior.
func (c *Controller) Metrics() *Metrics {
	if c == nil {
		return nil
	}
	return c.metrics
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
func (c *Controller) MetricsSnapshot() MetricsSnapshot {
	if c == nil {
		return MetricsSnapshot{}
	}
	return c.metrics.MakeSnapshot()
}

// AuditDropped describes the auditdropped operation and its observable behavior.
func (c *Controller) AuditDropped() uint64 {
	if c == nil {
		return 0
	}
	return c.audit.Dropped()
}

// Close drains the audit dispatcher and detaches the unauthorized handler.
// A closed controller rejects further auth operations.
func (c *Controller) Close() error {
	if c == nil {
		return ErrControllerNotReady
	}
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.registry.OnUnauthorized(nil)
	c.audit.Close()
	return nil
}

func (c *Controller) ready() error {
	if c == nil {
		return ErrControllerNotReady
	}
	if c.closed.Load() {
		return ErrControllerClosed
	}
	return nil
}

func (c *Controller) setState(s Session) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Roles = append([]string(nil), u.Roles...)
	return &out
}
