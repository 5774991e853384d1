package adminkit

import (
	"context"
	"time"

	"github.com/tokenbrush/adminkit/store"
	"github.com/tokenbrush/adminkit/token"
)

// Login authenticates against the backend and, on success, establishes the
// session and navigates to the landing route. The credential is written to
// the Store only when remember is true; otherwise the session lives purely
// in memory and does not survive a restart.
//
// The profile returned by the backend wins over claims decoded from the
// access token; decoding is the fallback when the response carried no user.
// A login by an account that holds none of the configured required roles is
// torn down silently: the controller returns (nil, nil), clears every trace
// of the session, and navigates back to the login route.
func (c *Controller) Login(ctx context.Context, identifier, password string, remember bool) (*User, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	c.setState(Session{Status: StatusAuthenticating})
	start := time.Now()

	res, err := c.authAPI.Login(ctx, identifier, password)
	if err != nil {
		return nil, c.failLogin(err)
	}
	if res == nil || res.AccessToken == "" {
		return nil, c.failLogin(ErrLoginTokenMissing)
	}

	user := cloneUser(res.User)
	if user == nil {
		user = userFromToken(token.Decode(res.AccessToken))
	}

	if !user.HasAnyRole(c.config.Access.RequiredRoles...) {
		c.registry.SetAccessToken("")
		_ = c.store.Clear(ctx)
		c.setState(Session{Status: StatusIdle})
		c.metrics.Inc(MetricLoginRejectedRole)

		var userID string
		if user != nil {
			userID = user.ID
		}
		c.emitAudit(AuditLoginRoleRejected, userID, false, nil, nil)
		c.navigator.Navigate(RouteLogin)
		return nil, nil
	}

	c.registry.SetAccessToken(res.AccessToken)

	if remember {
		// Persistence failure must not invalidate a live session; the
		// credential just won't survive a restart.
		_ = c.store.Save(ctx, &store.Credential{
			AccessToken: res.AccessToken,
			User:        cachedFromUser(user),
		})
	}

	c.setState(Session{
		Status:      StatusAuthenticated,
		AccessToken: res.AccessToken,
		User:        user,
	})
	c.metrics.Inc(MetricLoginSuccess)
	c.metrics.Observe(MetricLoginLatency, time.Since(start))
	c.emitAudit(AuditLoginSuccess, user.ID, true, nil, nil)
	c.navigator.Navigate(RouteWelcome)

	return cloneUser(user), nil
}

func (c *Controller) failLogin(err error) error {
	c.registry.SetAccessToken("")
	c.setState(Session{Status: StatusError, Err: err})
	c.metrics.Inc(MetricLoginFailure)
	c.emitAudit(AuditLoginFailure, "", false, err, nil)
	return err
}
