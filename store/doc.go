// Package store persists the operator's credential — an access token plus an
// optional cached profile — across console restarts.
//
// Three implementations cover the supported storage modes: [Memory] for
// sessions that must not outlive the process, [File] for the default
// single-operator setup, and [Redis] for shared or kiosk deployments where
// several console instances reuse one signed-in session.
//
// All implementations share the same tolerance contract: a missing
// credential loads as (nil, nil), a corrupt stored profile degrades to a
// credential without a profile, and Clear is idempotent.
package store
