// Package api is the typed client for the token-metering backend's admin
// surface: auth, user administration, the token ledger, operation pricing,
// prompt templates, style libraries, and hints.
//
// The backend has grown several envelope dialects over time. This package
// absorbs them at the edge: list payloads may arrive as a bare array or
// nested under users/transactions/items/data, totals under
// total/count/totalCount/pagination.total, cursors under
// nextCursor/pagination.cursor/cursor, and IDs as strings or numbers.
// Callers always see one canonical shape.
//
// # Architecture boundaries
//
// This package owns wire formats and endpoint paths. It attaches no
// credentials itself; authentication is a property of the *http.Client it is
// given (see the transport package).
//
// # What this package must NOT do
//
//   - Hold session state or react to 401 responses.
//   - Retry requests.
//   - Import the adminkit root package.
package api
