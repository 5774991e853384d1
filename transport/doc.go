// Package transport provides the HTTP round tripper that attaches the
// current access token to outgoing requests and reports expired sessions.
//
// The round tripper reads the token from a [session.Registry] at request
// time, so a token set after the client was built is picked up without
// rebuilding anything. A 401 response triggers the registry's unauthorized
// handler exactly once per response and is then returned to the caller
// unchanged: the caller still observes the failure, the session teardown
// happens as a side effect.
//
// # What this package must NOT do
//
//   - Retry requests. A 401 means the session is gone; replaying the
//     request would just fail again.
//   - Refresh tokens. The console has no refresh grant.
//   - Swallow responses. Interception is observation, not recovery.
package transport
