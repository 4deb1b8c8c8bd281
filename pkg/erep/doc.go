// Package erep carries a value together with an optional diagnostic trail so a
// pipeline of steps can keep going past individual failures.
//
// Highlights:
// - Erep[T]: the value plus an optional Report
// - Report: a message with an ordered list of child reports
// - VMap: transform the value with a step that cannot fail
// - Map: run a step that returns its own Erep and merge both trails
// - EMap: run a (U, error) step; failure becomes a None value and a fresh trail
// - OMap: run an Option[U] step; None becomes a None value and a fresh trail
//
// Nothing here logs, panics or returns an error. Callers inspect the trail
// returned by UnwrapWithErr to learn whether any step failed.
package erep
