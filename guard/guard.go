package guard

import "github.com/tokenbrush/adminkit"

// Verdict is a route admission decision. Exactly one of Allow, Pending, or a
// non-empty Redirect applies.
type Verdict struct {
	Allow    bool
	Pending  bool
	Redirect string
	// From is the route the visitor was denied, so a login flow can return
	// there afterwards. Set only on redirects to the login route.
	From string
}

// Authenticated admits authenticated sessions. While hydration is still
// running the verdict is Pending, so callers hold the route instead of
// bouncing a restored session to the login screen.
func Authenticated(sess adminkit.Session, from string) Verdict {
	switch sess.Status {
	case adminkit.StatusAuthenticating:
		return Verdict{Pending: true}
	case adminkit.StatusAuthenticated:
		return Verdict{Allow: true}
	default:
		return Verdict{Redirect: adminkit.RouteLogin, From: from}
	}
}

// Role admits users holding at least one of the required roles. An empty
// requirement admits everyone; a user without any match is sent to the
// forbidden route, not the login route: they are signed in, just not
// entitled.
func Role(user *adminkit.User, required ...string) Verdict {
	if len(required) == 0 {
		return Verdict{Allow: true}
	}
	if user.HasAnyRole(required...) {
		return Verdict{Allow: true}
	}
	return Verdict{Redirect: adminkit.RouteForbidden}
}

// Require chains [Authenticated] and [Role]: the session must be live and
// its user must hold one of the required roles.
func Require(sess adminkit.Session, from string, required ...string) Verdict {
	v := Authenticated(sess, from)
	if !v.Allow {
		return v
	}
	return Role(sess.User, required...)
}
