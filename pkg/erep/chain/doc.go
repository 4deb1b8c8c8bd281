// Package chain provides a fluent wrapper around erep.Erep[T] for building
// pipelines that keep going past failed steps.
//
// Every chain is stamped with a uuid and a UTC creation time at Start; both
// are carried unchanged through each step so a finished pipeline can be
// correlated with where it began.
//
// Key operations:
// - Start/FromValue: begin a chain from an Erep[T] or a plain value
// - VMap/Map/EMap/OMap: the erep mapping steps, chained
// - Ensure: run a side effect while nothing has been reported
// - Finally: collapse the chain into a final value via handlers
package chain
