package async

import (
	"iter"

	"github.com/sck451/optres"
)

// AsyncOption wraps a pending computation of an Option. The wrapped
// future never rejects: every constructor and combinator absorbs a
// rejection into None, so Await is total. The zero value is not usable;
// construct with NewOption, ResolvedOption or CapturedOption.
type AsyncOption[T any] struct {
	fut *Future[optres.Option[T]]
}

// NewOption wraps a future of an Option. A rejection of the future is
// absorbed into None.
func NewOption[T any](fut *Future[optres.Option[T]]) AsyncOption[T] {
	return AsyncOption[T]{fut: Go(func() (optres.Option[T], error) {
		o, err := fut.Wait()
		if err != nil {
			return optres.None[T](), nil
		}
		return o, nil
	})}
}

// ResolvedOption wraps an already-settled Option.
func ResolvedOption[T any](o optres.Option[T]) AsyncOption[T] {
	return AsyncOption[T]{fut: Resolved(o)}
}

// CapturedOption converts a future of a raw value: resolution becomes
// Some and rejection becomes None.
func CapturedOption[T any](fut *Future[T]) AsyncOption[T] {
	return AsyncOption[T]{fut: Go(func() (optres.Option[T], error) {
		value, err := fut.Wait()
		if err != nil {
			return optres.None[T](), nil
		}
		return optres.Some(value), nil
	})}
}

// Await blocks until the wrapped computation settles and returns the
// Option. It never fails.
func (ao AsyncOption[T]) Await() optres.Option[T] {
	o, _ := ao.fut.Wait()
	return o
}

// Done returns a channel that closes when the wrapped computation
// settles.
func (ao AsyncOption[T]) Done() <-chan struct{} {
	return ao.fut.Done()
}

// IsSome blocks until settled and reports whether a value is present.
func (ao AsyncOption[T]) IsSome() bool {
	return ao.Await().IsSome()
}

// IsNone blocks until settled and reports whether the Option is empty.
func (ao AsyncOption[T]) IsNone() bool {
	return ao.Await().IsNone()
}

// IsSomeAnd blocks until settled and reports whether a value is
// present and satisfies the predicate.
func (ao AsyncOption[T]) IsSomeAnd(predicate func(T) bool) bool {
	return ao.Await().IsSomeAnd(predicate)
}

// IsNoneOr blocks until settled and reports whether the Option is
// empty or the value satisfies the predicate.
func (ao AsyncOption[T]) IsNoneOr(predicate func(T) bool) bool {
	return ao.Await().IsNoneOr(predicate)
}

// Unwrap blocks until settled and returns the value, panicking with
// *optres.UnwrapError if the Option is empty.
func (ao AsyncOption[T]) Unwrap() T {
	return ao.Await().Unwrap()
}

// Expect blocks until settled and returns the value, panicking with
// *optres.UnwrapError carrying the given message if the Option is
// empty.
func (ao AsyncOption[T]) Expect(message string) T {
	return ao.Await().Expect(message)
}

// UnwrapOr blocks until settled and returns the value or a default.
func (ao AsyncOption[T]) UnwrapOr(defaultValue T) T {
	return ao.Await().UnwrapOr(defaultValue)
}

// UnwrapOrElse blocks until settled and returns the value or computes
// a default.
func (ao AsyncOption[T]) UnwrapOrElse(fn func() T) T {
	return ao.Await().UnwrapOrElse(fn)
}

// Inspect calls fn with the value once settled, if present.
func (ao AsyncOption[T]) Inspect(fn func(T)) AsyncOption[T] {
	return NewOption(MatchOption(ao,
		func(v T) optres.Option[T] {
			fn(v)
			return optres.Some(v)
		},
		optres.None[T],
	))
}

// Filter keeps the value only if it satisfies the predicate.
func (ao AsyncOption[T]) Filter(predicate func(T) bool) AsyncOption[T] {
	return NewOption(MatchOption(ao,
		func(v T) optres.Option[T] {
			return optres.Some(v).Filter(predicate)
		},
		optres.None[T],
	))
}

// Or settles to this Option if it has a value, otherwise to other.
func (ao AsyncOption[T]) Or(other AsyncOption[T]) AsyncOption[T] {
	return NewOption(Go(func() (optres.Option[T], error) {
		o := ao.Await()
		if o.IsSome() {
			return o, nil
		}
		return other.Await(), nil
	}))
}

// OrElse settles to this Option if it has a value, otherwise to the
// wrapper produced by fn. The callback's own pending computation is
// awaited transparently.
func (ao AsyncOption[T]) OrElse(fn func() AsyncOption[T]) AsyncOption[T] {
	return NewOption(Go(func() (optres.Option[T], error) {
		o := ao.Await()
		if o.IsSome() {
			return o, nil
		}
		return fn().Await(), nil
	}))
}

// Xor settles to whichever of the two Options has a value, or None if
// both or neither do. Both operands are awaited.
func (ao AsyncOption[T]) Xor(other AsyncOption[T]) AsyncOption[T] {
	return NewOption(Go(func() (optres.Option[T], error) {
		return ao.Await().Xor(other.Await()), nil
	}))
}

// All returns an iterator that blocks until settled, then yields one
// element if present and none otherwise.
func (ao AsyncOption[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := ao.Await().Get(); ok {
			yield(v)
		}
	}
}

// MatchOption resolves the wrapped computation, then invokes exactly
// one of the two handlers exactly once and returns a future of its
// result. Every other AsyncOption combinator is built on this. A
// handler panic rejects the returned future.
func MatchOption[T, R any](ao AsyncOption[T], onSome func(T) R, onNone func() R) *Future[R] {
	return Go(func() (R, error) {
		return optres.MatchOption(ao.Await(), onSome, onNone), nil
	})
}

// MapOption applies fn to the value once settled. A panic in fn is
// converted to None, preserving the wrapper's never-rejects contract.
func MapOption[T, U any](ao AsyncOption[T], fn func(T) U) AsyncOption[U] {
	return NewOption(MatchOption(ao,
		func(v T) optres.Option[U] { return optres.Some(fn(v)) },
		optres.None[U],
	))
}

// MapOptionOr folds the settled Option, applying fn to the value or
// returning the default.
func MapOptionOr[T, U any](ao AsyncOption[T], defaultValue U, fn func(T) U) *Future[U] {
	return MatchOption(ao, fn, func() U { return defaultValue })
}

// MapOptionOrElse folds the settled Option, applying fn to the value
// or computing a default.
func MapOptionOrElse[T, U any](ao AsyncOption[T], defaultFn func() U, fn func(T) U) *Future[U] {
	return MatchOption(ao, fn, defaultFn)
}

// FlatMapOption applies an Option-returning fn to the value once
// settled.
func FlatMapOption[T, U any](ao AsyncOption[T], fn func(T) optres.Option[U]) AsyncOption[U] {
	return NewOption(MatchOption(ao, fn, optres.None[U]))
}

// FlatMapOptionAsync applies an AsyncOption-returning fn to the value
// once settled, awaiting the callback's computation transparently.
func FlatMapOptionAsync[T, U any](ao AsyncOption[T], fn func(T) AsyncOption[U]) AsyncOption[U] {
	return NewOption(Go(func() (optres.Option[U], error) {
		o := ao.Await()
		if v, ok := o.Get(); ok {
			return fn(v).Await(), nil
		}
		return optres.None[U](), nil
	}))
}

// AndOption settles to other if this Option has a value, otherwise
// None.
func AndOption[T, U any](ao AsyncOption[T], other AsyncOption[U]) AsyncOption[U] {
	return NewOption(Go(func() (optres.Option[U], error) {
		if ao.Await().IsNone() {
			return optres.None[U](), nil
		}
		return other.Await(), nil
	}))
}

// ZipOption pairs the values of two wrappers once both settle, or None
// if either is empty.
func ZipOption[T, U any](a AsyncOption[T], b AsyncOption[U]) AsyncOption[optres.Pair[T, U]] {
	return NewOption(Go(func() (optres.Option[optres.Pair[T, U]], error) {
		return optres.ZipOption(a.Await(), b.Await()), nil
	}))
}

// ZipOptionWith combines the values of two wrappers using fn once both
// settle, or None if either is empty.
func ZipOptionWith[T, U, R any](a AsyncOption[T], b AsyncOption[U], fn func(T, U) R) AsyncOption[R] {
	return NewOption(Go(func() (optres.Option[R], error) {
		return optres.ZipOptionWith(a.Await(), b.Await(), fn), nil
	}))
}

// OptionToResult bridges to AsyncResult, using err as the failure
// payload for None.
func OptionToResult[T, E any](ao AsyncOption[T], err E) AsyncResult[T, E] {
	return NewResult(Go(func() (optres.Result[T, E], error) {
		return optres.OptionToResult(ao.Await(), err), nil
	}))
}
