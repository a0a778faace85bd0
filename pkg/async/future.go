package async

import (
	"context"
	"fmt"
)

// Result is the outcome of one asynchronous call
type Result[T any] struct {
	Value T
	Err   error
}

// Future delivers the result of a call started with Go
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
}

// Go runs fn on its own goroutine. Cancellation is left to fn through ctx.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.result = Result[T]{Err: fmt.Errorf("async call panicked: %v", r)}
			}
		}()

		value, err := fn(ctx)
		f.result = Result[T]{Value: value, Err: err}
	}()

	return f
}

// Done is closed once the result is available
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call finishes or ctx is done
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result.Value, f.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome without blocking; ok is false while the call is running
func (f *Future[T]) Result() (Result[T], bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return Result[T]{}, false
	}
}

// Awaiter is the untyped view of a Future used by Wait
type Awaiter interface {
	Done() <-chan struct{}
	err() error
}

func (f *Future[T]) err() error {
	return f.result.Err
}

// Wait blocks until every future finishes and returns the first error in argument order
func Wait(ctx context.Context, futures ...Awaiter) error {
	for _, f := range futures {
		select {
		case <-f.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, f := range futures {
		if err := f.err(); err != nil {
			return err
		}
	}
	return nil
}
