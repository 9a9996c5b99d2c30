package async

import (
	"iter"

	"github.com/sck451/optres"
)

// AsyncResult wraps a pending computation of a Result. Unlike
// AsyncOption, a rejection of the wrapped future is preserved: Await
// and every delegate report it as an error instead of coercing it into
// the Err variant. CapturedResult is the explicit opt-in for that
// collapsing behavior. The zero value is not usable; construct with
// NewResult, ResolvedResult or CapturedResult.
type AsyncResult[T, E any] struct {
	fut *Future[optres.Result[T, E]]
}

// NewResult wraps a future of a Result. Rejections are not
// intercepted.
func NewResult[T, E any](fut *Future[optres.Result[T, E]]) AsyncResult[T, E] {
	return AsyncResult[T, E]{fut: fut}
}

// ResolvedResult wraps an already-settled Result.
func ResolvedResult[T, E any](r optres.Result[T, E]) AsyncResult[T, E] {
	return AsyncResult[T, E]{fut: Resolved(r)}
}

// CapturedResult converts a future of a raw value: resolution becomes
// Ok and rejection becomes Err carrying the rejection reason.
func CapturedResult[T any](fut *Future[T]) AsyncResult[T, error] {
	return AsyncResult[T, error]{fut: Go(func() (optres.Result[T, error], error) {
		return optres.TryFunc(fut.Wait()), nil
	})}
}

// Await blocks until the wrapped computation settles and returns the
// Result, or the rejection reason.
func (ar AsyncResult[T, E]) Await() (optres.Result[T, E], error) {
	return ar.fut.Wait()
}

// Done returns a channel that closes when the wrapped computation
// settles.
func (ar AsyncResult[T, E]) Done() <-chan struct{} {
	return ar.fut.Done()
}

// IsOk blocks until settled and reports whether the Result is
// successful.
func (ar AsyncResult[T, E]) IsOk() (bool, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		return false, err
	}
	return r.IsOk(), nil
}

// IsErr blocks until settled and reports whether the Result is a
// failure.
func (ar AsyncResult[T, E]) IsErr() (bool, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		return false, err
	}
	return r.IsErr(), nil
}

// IsOkAnd blocks until settled and reports whether the Result is
// successful and the value satisfies the predicate.
func (ar AsyncResult[T, E]) IsOkAnd(predicate func(T) bool) (bool, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		return false, err
	}
	return r.IsOkAnd(predicate), nil
}

// IsErrAnd blocks until settled and reports whether the Result is a
// failure whose payload satisfies the predicate.
func (ar AsyncResult[T, E]) IsErrAnd(predicate func(E) bool) (bool, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		return false, err
	}
	return r.IsErrAnd(predicate), nil
}

// Unwrap blocks until settled and returns the success value. A
// rejection is returned as the error; a settled failure panics with
// *optres.UnwrapError.
func (ar AsyncResult[T, E]) Unwrap() (T, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Unwrap(), nil
}

// UnwrapErr blocks until settled and returns the failure payload. A
// rejection is returned as the error; a settled success panics with
// *optres.UnwrapError.
func (ar AsyncResult[T, E]) UnwrapErr() (E, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		var zero E
		return zero, err
	}
	return r.UnwrapErr(), nil
}

// UnwrapOr blocks until settled and returns the success value or a
// default. A rejection is returned as the error.
func (ar AsyncResult[T, E]) UnwrapOr(defaultValue T) (T, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		var zero T
		return zero, err
	}
	return r.UnwrapOr(defaultValue), nil
}

// UnwrapOrElse blocks until settled and returns the success value or
// computes a default from the failure payload. A rejection is returned
// as the error.
func (ar AsyncResult[T, E]) UnwrapOrElse(fn func(E) T) (T, error) {
	r, err := ar.fut.Wait()
	if err != nil {
		var zero T
		return zero, err
	}
	return r.UnwrapOrElse(fn), nil
}

// Inspect calls fn with the success value once settled.
func (ar AsyncResult[T, E]) Inspect(fn func(T)) AsyncResult[T, E] {
	return NewResult(MatchResult(ar,
		func(v T) optres.Result[T, E] {
			fn(v)
			return optres.Ok[T, E](v)
		},
		func(e E) optres.Result[T, E] { return optres.Err[T](e) },
	))
}

// InspectErr calls fn with the failure payload once settled.
func (ar AsyncResult[T, E]) InspectErr(fn func(E)) AsyncResult[T, E] {
	return NewResult(MatchResult(ar,
		func(v T) optres.Result[T, E] { return optres.Ok[T, E](v) },
		func(e E) optres.Result[T, E] {
			fn(e)
			return optres.Err[T](e)
		},
	))
}

// Or settles to this Result if successful, otherwise to other. A
// rejection passes through.
func (ar AsyncResult[T, E]) Or(other AsyncResult[T, E]) AsyncResult[T, E] {
	return NewResult(Go(func() (optres.Result[T, E], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			var zero optres.Result[T, E]
			return zero, err
		}
		if r.IsOk() {
			return r, nil
		}
		return other.Await()
	}))
}

// OrElse settles to this Result if successful, otherwise to the
// wrapper produced by fn from the failure payload.
func (ar AsyncResult[T, E]) OrElse(fn func(E) AsyncResult[T, E]) AsyncResult[T, E] {
	return NewResult(Go(func() (optres.Result[T, E], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			var zero optres.Result[T, E]
			return zero, err
		}
		if r.IsOk() {
			return r, nil
		}
		return fn(r.UnwrapErr()).Await()
	}))
}

// Ok projects the success value as an AsyncOption. Both a failure and
// a rejection become None, since AsyncOption never rejects.
func (ar AsyncResult[T, E]) Ok() AsyncOption[T] {
	return NewOption(Go(func() (optres.Option[T], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			return optres.None[T](), nil
		}
		return r.Ok(), nil
	}))
}

// Err projects the failure payload as an AsyncOption. Both a success
// and a rejection become None.
func (ar AsyncResult[T, E]) Err() AsyncOption[E] {
	return NewOption(Go(func() (optres.Option[E], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			return optres.None[E](), nil
		}
		return r.Err(), nil
	}))
}

// All returns an iterator that blocks until settled, then yields the
// success value if present and nothing otherwise.
func (ar AsyncResult[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		r, err := ar.fut.Wait()
		if err == nil && r.IsOk() {
			yield(r.Unwrap())
		}
	}
}

// MatchResult resolves the wrapped computation, then invokes exactly
// one of the two handlers exactly once and returns a future of its
// result. A rejection of the source rejects the returned future
// without invoking either handler; a handler panic rejects it too.
// Every other AsyncResult combinator is built on this.
func MatchResult[T, E, R any](ar AsyncResult[T, E], onOk func(T) R, onErr func(E) R) *Future[R] {
	return Go(func() (R, error) {
		r, err := ar.fut.Wait()
		if err != nil {
			var zero R
			return zero, err
		}
		return optres.MatchResult(r, onOk, onErr), nil
	})
}

// MapResult applies fn to the success value once settled. A panic in
// fn rejects the derived computation; it is not absorbed into Err.
func MapResult[T, U, E any](ar AsyncResult[T, E], fn func(T) U) AsyncResult[U, E] {
	return NewResult(MatchResult(ar,
		func(v T) optres.Result[U, E] { return optres.Ok[U, E](fn(v)) },
		func(e E) optres.Result[U, E] { return optres.Err[U](e) },
	))
}

// MapResultErr applies fn to the failure payload once settled. A panic
// in fn rejects the derived computation.
func MapResultErr[T, E, F any](ar AsyncResult[T, E], fn func(E) F) AsyncResult[T, F] {
	return NewResult(MatchResult(ar,
		func(v T) optres.Result[T, F] { return optres.Ok[T, F](v) },
		func(e E) optres.Result[T, F] { return optres.Err[T](fn(e)) },
	))
}

// MapResultOr folds the settled Result, applying fn to the success
// value or returning the default. A rejection rejects the returned
// future.
func MapResultOr[T, E, U any](ar AsyncResult[T, E], defaultValue U, fn func(T) U) *Future[U] {
	return MatchResult(ar, fn, func(E) U { return defaultValue })
}

// MapResultOrElse folds the settled Result, applying fn to the success
// value or computing a default from the failure payload.
func MapResultOrElse[T, E, U any](ar AsyncResult[T, E], defaultFn func(E) U, fn func(T) U) *Future[U] {
	return MatchResult(ar, fn, defaultFn)
}

// FlatMapResult applies a Result-returning fn to the success value
// once settled.
func FlatMapResult[T, U, E any](ar AsyncResult[T, E], fn func(T) optres.Result[U, E]) AsyncResult[U, E] {
	return NewResult(MatchResult(ar, fn,
		func(e E) optres.Result[U, E] { return optres.Err[U](e) },
	))
}

// FlatMapResultAsync applies an AsyncResult-returning fn to the
// success value once settled, awaiting the callback's computation
// transparently.
func FlatMapResultAsync[T, U, E any](ar AsyncResult[T, E], fn func(T) AsyncResult[U, E]) AsyncResult[U, E] {
	return NewResult(Go(func() (optres.Result[U, E], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			var zero optres.Result[U, E]
			return zero, err
		}
		if r.IsErr() {
			return optres.Err[U](r.UnwrapErr()), nil
		}
		return fn(r.Unwrap()).Await()
	}))
}

// ChainResult applies an AsyncResult-returning fn whose failure type
// may differ from the source's; the combined failure type is any, as
// in the synchronous ChainResult. A failed or rejected source
// short-circuits without calling fn.
func ChainResult[T, E, U, F any](ar AsyncResult[T, E], fn func(T) AsyncResult[U, F]) AsyncResult[U, any] {
	return NewResult(Go(func() (optres.Result[U, any], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			var zero optres.Result[U, any]
			return zero, err
		}
		if r.IsErr() {
			return optres.Err[U, any](r.UnwrapErr()), nil
		}
		next, err := fn(r.Unwrap()).Await()
		if err != nil {
			var zero optres.Result[U, any]
			return zero, err
		}
		return optres.MatchResult(next,
			func(u U) optres.Result[U, any] { return optres.Ok[U, any](u) },
			func(f F) optres.Result[U, any] { return optres.Err[U, any](f) },
		), nil
	}))
}

// AndResult settles to other if this Result is successful, otherwise
// the failure or rejection passes through.
func AndResult[T, U, E any](ar AsyncResult[T, E], other AsyncResult[U, E]) AsyncResult[U, E] {
	return NewResult(Go(func() (optres.Result[U, E], error) {
		r, err := ar.fut.Wait()
		if err != nil {
			var zero optres.Result[U, E]
			return zero, err
		}
		if r.IsErr() {
			return optres.Err[U](r.UnwrapErr()), nil
		}
		return other.Await()
	}))
}
