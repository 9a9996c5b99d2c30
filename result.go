package optres

import (
	"fmt"
	"iter"
)

// Result represents the outcome of an operation that may fail. It
// contains either a success value of type T or a failure payload of
// type E. The payload type is opaque to the container and need not be
// a Go error.
type Result[T, E any] struct {
	value T
	errv  E
	ok    bool
}

// Ok creates a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{errv: err, ok: false}
}

// Try captures a conventional Go call as a Result.
func Try[T any](fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// TryFunc wraps a (value, error) pair as a Result.
func TryFunc[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd returns true if the Result is successful and the value
// satisfies the predicate. The predicate is not called on failure.
func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

// IsErrAnd returns true if the Result is a failure and the payload
// satisfies the predicate.
func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.errv)
}

// Unwrap returns the success value or panics with *UnwrapError
// carrying the failure payload.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		unwrapFailed("called Unwrap on Err", r.errv)
	}
	return r.value
}

// Expect returns the success value or panics with *UnwrapError
// carrying the given message and the failure payload.
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		unwrapFailed(message, r.errv)
	}
	return r.value
}

// UnwrapErr returns the failure payload or panics with *UnwrapError
// carrying the success value.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		unwrapFailed("called UnwrapErr on Ok", r.value)
	}
	return r.errv
}

// ExpectErr returns the failure payload or panics with *UnwrapError
// carrying the given message and the success value.
func (r Result[T, E]) ExpectErr(message string) E {
	if r.ok {
		unwrapFailed(message, r.value)
	}
	return r.errv
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from
// the failure payload.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.errv)
}

// Inspect calls fn with the success value if present and returns the
// Result unchanged.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the failure payload if present and returns
// the Result unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.errv)
	}
	return r
}

// Or returns the Result if successful, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns the Result if successful, otherwise the Result
// produced by fn from the failure payload.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.errv)
}

// Match executes one of two functions based on Result state.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.errv)
	}
}

// Ok projects the success value as an Option, discarding the failure
// payload.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err projects the failure payload as an Option, discarding the
// success value.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.errv)
}

// All returns an iterator over the Result: the success value if
// present, nothing otherwise.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// ToSlice converts the Result to a slice (empty on failure).
func (r Result[T, E]) ToSlice() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.errv)
}

// MapResult applies a transformation function to the success value.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.errv)
}

// MapResultErr applies a transformation function to the failure
// payload, leaving a success untouched.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.errv))
}

// MapResultOr folds the Result to a single value, applying fn to the
// success value or returning the default.
func MapResultOr[T, U, E any](r Result[T, E], defaultValue U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return defaultValue
}

// MapResultOrElse folds the Result to a single value, applying fn to
// the success value or computing a default from the failure payload.
func MapResultOrElse[T, U, E any](r Result[T, E], defaultFn func(E) U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return defaultFn(r.errv)
}

// FlatMapResult applies a function that returns a Result with the
// same failure type.
func FlatMapResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.errv)
}

// ChainResult applies a function whose Result may carry a different
// failure type. Since Go has no union types, the combined failure type
// is any; either side's payload passes through unchanged. A failed
// input short-circuits without calling fn.
func ChainResult[T, E, U, F any](r Result[T, E], fn func(T) Result[U, F]) Result[U, any] {
	if !r.ok {
		return Err[U, any](r.errv)
	}
	next := fn(r.value)
	if !next.ok {
		return Err[U, any](next.errv)
	}
	return Ok[U, any](next.value)
}

// AndResult returns other if the Result is successful, otherwise the
// failure passes through.
func AndResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.errv)
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.errv)
}
