// Package optres provides Option and Result value types for Go.
// Option models presence or absence of a value as a type-safe
// alternative to nil pointers; Result models the outcome of a fallible
// operation without threading error returns through every step. Both
// are immutable two-variant values with a combinator surface, and both
// have asynchronous counterparts in the async subpackage.
package optres

import (
	"fmt"
	"iter"
)

// Option represents an optional value that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{present: false}
}

// FromPtr creates an Option from a pointer, mapping nil to None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsSomeAnd returns true if the Option contains a value and the value
// satisfies the predicate. The predicate is not called on None.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.present && predicate(o.value)
}

// IsNoneOr returns true if the Option is empty or the contained value
// satisfies the predicate.
func (o Option[T]) IsNoneOr(predicate func(T) bool) bool {
	return !o.present || predicate(o.value)
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the contained value or panics with *UnwrapError if
// the Option is empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		unwrapFailed("called Unwrap on None", nil)
	}
	return o.value
}

// Expect returns the contained value or panics with *UnwrapError
// carrying the given message if the Option is empty.
func (o Option[T]) Expect(message string) T {
	if !o.present {
		unwrapFailed(message, nil)
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Inspect calls fn with the contained value if present and returns the
// Option unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

// Filter returns the Option if it contains a value satisfying the
// predicate, otherwise None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the Option if it contains a value, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the Option if it contains a value, otherwise the
// Option produced by fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fn()
}

// Xor returns whichever of the two Options contains a value, or None
// if both or neither do.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	default:
		return None[T]()
	}
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// All returns an iterator over the Option: one element if present,
// none otherwise. The sequence is restartable.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToSlice converts the Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// ToPtr converts the Option to a pointer, mapping None to nil.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption applies a transformation function to the contained value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOptionOr folds the Option to a single value, applying fn to the
// contained value or returning the default.
func MapOptionOr[T, U any](o Option[T], defaultValue U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultValue
}

// MapOptionOrElse folds the Option to a single value, applying fn to
// the contained value or computing a default.
func MapOptionOrElse[T, U any](o Option[T], defaultFn func() U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultFn()
}

// FlatMapOption applies a function that returns an Option.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// AndOption returns other if the Option contains a value, otherwise
// None. The empty state short-circuits.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.present {
		return other
	}
	return None[U]()
}

// ZipOption pairs the values of two Options, or returns None if either
// is empty.
func ZipOption[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if a.present && b.present {
		return Some(NewPair(a.value, b.value))
	}
	return None[Pair[T, U]]()
}

// ZipOptionWith combines the values of two Options using fn, or
// returns None if either is empty.
func ZipOptionWith[T, U, R any](a Option[T], b Option[U], fn func(T, U) R) Option[R] {
	if a.present && b.present {
		return Some(fn(a.value, b.value))
	}
	return None[R]()
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// OptionToResult converts an Option to a Result, using err as the
// failure payload for None.
func OptionToResult[T, E any](o Option[T], err E) Result[T, E] {
	if o.present {
		return Ok[T, E](o.value)
	}
	return Err[T](err)
}

// OptionToResultElse converts an Option to a Result, computing the
// failure payload for None.
func OptionToResultElse[T, E any](o Option[T], errFn func() E) Result[T, E] {
	if o.present {
		return Ok[T, E](o.value)
	}
	return Err[T](errFn())
}
