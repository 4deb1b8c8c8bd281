package chain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/erep/pkg/erep"
)

// Chain wraps an erep.Erep with a run id and creation time to enable fluent chaining
type Chain[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	steps     int
	failed    bool
	value     erep.Erep[T]
}

// Start creates a new chain from an erep.Erep. A non-empty starting trail
// marks the chain as failed.
func Start[T any](e erep.Erep[T]) *Chain[T] {
	return &Chain[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		failed:    carriesFailure(e.Report()),
		value:     e,
	}
}

// FromValue creates a new chain from a value with no trail
func FromValue[T any](v T) *Chain[T] {
	return Start(erep.New(v))
}

func next[T, U any](c *Chain[T], e erep.Erep[U], failed bool) *Chain[U] {
	return &Chain[U]{
		id:        c.id,
		createdAt: c.createdAt,
		steps:     c.steps + 1,
		failed:    c.failed || failed,
		value:     e,
	}
}

func carriesFailure(rep erep.Option[erep.Report]) bool {
	r, ok := rep.Get()
	return ok && !r.IsEmpty()
}

// Erep returns the underlying erep.Erep
func (c *Chain[T]) Erep() erep.Erep[T] {
	return c.value
}

// ID returns the chain id, shared by every step since Start
func (c *Chain[T]) ID() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c *Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Failed reports whether any step so far recorded a failure. It stays set
// once a step fails, even if later steps succeed.
func (c *Chain[T]) Failed() bool {
	return c.failed
}

// Steps returns how many mapping steps were applied since Start
func (c *Chain[T]) Steps() int {
	return c.steps
}

// VMap chains a step that cannot fail
func VMap[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	return next(c, erep.VMap(c.value, f), false)
}

// Map chains a step returning its own erep.Erep and merges the trails
func Map[T, U any](c *Chain[T], f func(T) erep.Erep[U]) *Chain[U] {
	var stepFailed bool
	out := erep.Map(c.value, func(v T) erep.Erep[U] {
		step := f(v)
		stepFailed = carriesFailure(step.Report())
		return step
	})
	return next(c, out, stepFailed)
}

// EMap chains a function that returns (U, error)
func EMap[T, U any](c *Chain[T], f func(T) (U, error), msg erep.Option[string]) *Chain[erep.Option[U]] {
	out := erep.EMap(c.value, f, msg)
	return next(c, out, out.Value().IsNone())
}

// OMap chains a function that returns erep.Option[U]
func OMap[T, U any](c *Chain[T], f func(T) erep.Option[U], msg erep.Option[string]) *Chain[erep.Option[U]] {
	out := erep.OMap(c.value, f, msg)
	return next(c, out, out.Value().IsNone())
}

// Ensure performs a side effect when no failure has been recorded, without changing the value
func (c *Chain[T]) Ensure(onClean func(T)) *Chain[T] {
	if !c.failed {
		onClean(c.value.Value())
	}
	return c
}

// Finally collapses the chain. onReported runs when a step has failed and
// gets the current trail, onClean otherwise.
func Finally[T, U any](c *Chain[T], onClean func(T) U, onReported func(T, erep.Report) U) U {
	v, rep := c.value.UnwrapWithErr()
	if c.failed {
		return onReported(v, rep.UnwrapOr(erep.EmptyReport()))
	}
	return onClean(v)
}
