// Package guard turns session state into route admission verdicts: proceed,
// wait for hydration, or redirect.
//
// Guards are pure functions over a [adminkit.Session] snapshot. They decide,
// the caller navigates; a CLI shows its login screen where a web frontend
// would redirect, but the verdict is the same.
package guard
