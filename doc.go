// Package adminkit provides the session and authorization core of an
// administrative console for a token-metered AI-prompt backend: credential
// hydration from durable storage, login/logout orchestration, bearer-token
// transport wiring, and forced logout on backend 401 responses.
//
// The package is the public surface. It exposes [Controller], [Builder],
// [Config], and value types (Session, User, MetricsSnapshot, AuditEvent).
// The backend REST API is an external collaborator reached through the
// resource clients in the api sub-package; adminkit never performs balance
// arithmetic, credential validation, or any other backend computation.
//
// # Architecture boundaries
//
// All session state lives in explicitly constructed objects with application
// lifetime: one [session.Registry], one credential [store.Store], and one
// [Controller] per process, wired together by [Builder.Build]. There are no
// package-level globals.
//
// # What this package must NOT do
//
//   - Verify token signatures. The decoded payload is a rendering hint; the
//     backend remains the security boundary.
//   - Retry failed requests. Recovery is either a forced logout or a
//     user-initiated retry carrying the same idempotency key.
//   - Cache backend collections. Every listing is re-fetched on demand.
package adminkit
