package erep

// DefaultNoneMessage is the trail message OMap records when the step returns
// None and no override message was given.
const DefaultNoneMessage = "Got None, instead of Some"

// Erep carries a value together with an optional diagnostic trail. A wrapper
// is consumed by each mapping step; do not reuse it after passing it on.
type Erep[T any] struct {
	val T
	rep Option[Report]
}

// New wraps v with no trail.
func New[T any](v T) Erep[T] {
	return Erep[T]{val: v}
}

// WithReport wraps v together with an initial trail.
func WithReport[T any](v T, r Report) Erep[T] {
	return Erep[T]{val: v, rep: Some(r)}
}

// From wraps v together with an optional trail.
func From[T any](v T, rep Option[Report]) Erep[T] {
	return Erep[T]{val: v, rep: rep}
}

// Value returns the wrapped value.
func (e Erep[T]) Value() T {
	return e.val
}

// Report returns the trail, if any.
func (e Erep[T]) Report() Option[Report] {
	return e.rep
}

// HasReport reports whether a trail is present, empty or not.
func (e Erep[T]) HasReport() bool {
	return e.rep.IsSome()
}

// UnwrapWithErr returns the value and the trail.
func (e Erep[T]) UnwrapWithErr() (T, Option[Report]) {
	return e.val, e.rep
}

// VMap applies a step that cannot fail. The trail is kept as is.
func VMap[T, U any](e Erep[T], f func(T) U) Erep[U] {
	v, r := e.UnwrapWithErr()
	return Erep[U]{val: f(v), rep: r}
}

// Map applies a step that carries its own trail and merges both trails as
// children of a fresh empty trail, the incoming one first. The result always
// has a trail, even when neither side had one.
func Map[T, U any](e Erep[T], f func(T) Erep[U]) Erep[U] {
	vo, ro := e.UnwrapWithErr()
	v, r := f(vo).UnwrapWithErr()

	merged := EmptyReport()
	for _, rep := range []Option[Report]{ro, r} {
		merged = merged.PushOpt(rep)
	}
	return Erep[U]{val: v, rep: Some(merged)}
}

// EMap applies a step returning (U, error). On success the value becomes
// Some(u) and the incoming trail is kept. On failure the value is None and the
// trail is replaced by a single message: msg when given, err.Error() otherwise.
func EMap[T, U any](e Erep[T], f func(T) (U, error), msg Option[string]) Erep[Option[U]] {
	vo, ro := e.UnwrapWithErr()

	u, err := f(vo)
	if err == nil {
		// a nil u is still a successful result
		return Erep[Option[U]]{val: Option[U]{indirect: &u}, rep: ro}
	}
	if m, ok := msg.Get(); ok {
		return Erep[Option[U]]{val: None[U](), rep: Some(NewReport(m))}
	}
	return Erep[Option[U]]{val: None[U](), rep: Some(NewReport(err.Error()))}
}

// OMap applies a step returning Option[U]. A present result keeps the incoming
// trail; an absent one replaces it with msg or DefaultNoneMessage.
func OMap[T, U any](e Erep[T], f func(T) Option[U], msg Option[string]) Erep[Option[U]] {
	out := f(e.val)
	if out.IsSome() {
		return Erep[Option[U]]{val: out, rep: e.rep}
	}
	return Erep[Option[U]]{
		val: None[U](),
		rep: Some(NewReport(msg.UnwrapOr(DefaultNoneMessage))),
	}
}
