package adminkit

import (
	"context"

	"github.com/tokenbrush/adminkit/store"
	"github.com/tokenbrush/adminkit/token"
)

// Hydrate resolves the stored credential into a live session. It is meant to
// run once at startup, while the controller is still in
// [StatusAuthenticating].
//
// An absent or unusable credential resolves to [StatusIdle]; only a storage
// read failure is returned as an error. The cached profile wins over claims
// decoded from the stored token, which serve as the fallback identity.
func (c *Controller) Hydrate(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}

	c.setState(Session{Status: StatusAuthenticating})

	cred, err := c.store.Load(ctx)
	if err != nil {
		c.registry.SetAccessToken("")
		c.setState(Session{Status: StatusIdle})
		return err
	}
	if cred == nil || cred.AccessToken == "" {
		c.registry.SetAccessToken("")
		c.setState(Session{Status: StatusIdle})
		c.metrics.Inc(MetricHydrateEmpty)
		return nil
	}

	c.registry.SetAccessToken(cred.AccessToken)

	user := userFromCached(cred.User)
	if user == nil {
		user = userFromToken(token.Decode(cred.AccessToken))
	}
	if user == nil {
		// The token yields no identity. Requests still carry it; the first
		// 401 clears it through the forced-logout path.
		c.setState(Session{Status: StatusIdle, AccessToken: cred.AccessToken})
		c.metrics.Inc(MetricHydrateEmpty)
		return nil
	}

	c.setState(Session{
		Status:      StatusAuthenticated,
		AccessToken: cred.AccessToken,
		User:        user,
	})
	c.metrics.Inc(MetricSessionHydrated)
	c.emitAudit(AuditSessionHydrated, user.ID, true, nil, nil)

	return nil
}

func userFromCached(cu *store.CachedUser) *User {
	if cu == nil {
		return nil
	}
	u := &User{
		ID:       cu.ID,
		Email:    cu.Email,
		Username: cu.Username,
		Roles:    append([]string(nil), cu.Roles...),
	}
	if u.Roles == nil {
		u.Roles = []string{}
	}
	return u
}

func userFromToken(p *token.Payload) *User {
	if p == nil {
		return nil
	}
	return &User{
		ID:       p.Subject,
		Email:    p.Email,
		Username: p.Username,
		Roles:    append([]string(nil), p.Roles...),
	}
}

func cachedFromUser(u *User) *store.CachedUser {
	if u == nil {
		return nil
	}
	return &store.CachedUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Roles:    append([]string(nil), u.Roles...),
	}
}
