package adminkit

import "context"

// Logout tears down the session: registry token, stored credential, and
// state are cleared, and the navigator returns to the login route. Logging
// out an already-idle controller is a no-op teardown and still succeeds.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}

	userID := c.currentUserID()

	c.registry.SetAccessToken("")
	err := c.store.Clear(ctx)
	c.setState(Session{Status: StatusIdle})
	c.metrics.Inc(MetricLogout)
	c.emitAudit(AuditLogout, userID, err == nil, err, nil)
	c.navigator.Navigate(RouteLogin)

	return err
}

// handleUnauthorized is the registry callback installed by Build. It runs
// when any request through the authenticated transport comes back 401.
func (c *Controller) handleUnauthorized() {
	if c == nil || c.closed.Load() {
		return
	}

	ctx := context.Background()
	userID := c.currentUserID()

	c.registry.SetAccessToken("")
	_ = c.store.Clear(ctx)
	c.setState(Session{Status: StatusIdle})
	c.metrics.Inc(MetricSessionUnauthorized)
	c.emitAudit(AuditSessionUnauthorized, userID, false, nil, nil)
	c.navigator.Navigate(RouteLogin)
}

func (c *Controller) currentUserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.User == nil {
		return ""
	}
	return c.state.User.ID
}
