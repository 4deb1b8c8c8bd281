package erep

// Option holds either a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	indirect *T
}

// Some wraps v. Wrapping a nil pointer yields None.
func Some[T any](v T) Option[T] {
	if isNil(v) {
		return None[T]()
	}
	return Option[T]{indirect: &v}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsNone reports whether o holds no value.
func (o Option[T]) IsNone() bool {
	return o.indirect == nil
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.indirect != nil
}

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	if o.indirect == nil {
		var zero T
		return zero, false
	}
	return *o.indirect, true
}

// UnwrapOr returns the wrapped value or def when there is none.
func (o Option[T]) UnwrapOr(def T) T {
	if o.indirect == nil {
		return def
	}
	return *o.indirect
}
