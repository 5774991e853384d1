// Package session holds the in-memory access token shared by the transport
// layer and the auth controller, plus the single unauthorized callback used
// to signal forced logout.
//
// A [Registry] is constructed explicitly at startup and injected into both
// collaborators; its lifecycle is the application lifetime. The registry is
// deliberately unaware of durable storage — persistence is the store
// package's concern.
//
// # What this package must NOT do
//
//   - Hold ambient/static global state.
//   - Invoke the unauthorized callback while holding its own lock (the
//     callback re-enters the registry to clear the token).
//   - Import adminkit or any sibling package.
package session
