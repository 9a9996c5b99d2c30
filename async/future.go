// Package async provides asynchronous counterparts to the optres value
// types. A Future is a settle-once pending computation; AsyncOption and
// AsyncResult wrap a Future of an Option or Result and mirror the
// synchronous combinator surface over it.
package async

import (
	"context"
	"fmt"
)

// Future represents an async computation that settles exactly once,
// either resolving with a value or rejecting with an error.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts an async computation. A panic in fn is recovered and
// becomes the future's rejection.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.err = recoveredError(r)
			}
			close(f.done)
		}()
		f.value, f.err = fn()
	}()
	return f
}

// Resolved returns a future that has already resolved with value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: value}
	close(f.done)
	return f
}

// Rejected returns a future that has already rejected with err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Wait blocks until the future settles and returns its outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// WaitContext blocks until the future settles or the context is
// cancelled. Cancellation abandons the wait only; the underlying
// computation still runs to completion.
func (f *Future[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that closes when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
