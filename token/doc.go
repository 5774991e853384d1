// Package token decodes bearer access tokens into normalized profile
// payloads.
//
// Decoding is tolerant by contract: the payload is read without signature
// verification and any malformed input yields a nil payload instead of an
// error. The decoded profile is a hint used for rendering and role-gated
// routing, never a security boundary — the backend validates the token on
// every request it receives.
//
// # What this package must NOT do
//
//   - Verify signatures, expiry, issuer, or audience claims.
//   - Return errors or panic on malformed input.
//   - Import adminkit or any sibling package.
package token
