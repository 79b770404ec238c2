package scheduler

import (
	"context"
)

// Work is a unit of work run by a worker with a cancellable context.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() chan T {
	return f.input
}

func (f *Future[T]) Stop() {
	f.cancel()
}

// Await blocks until the result arrives or ctx is done. On ctx expiry the
// work is cancelled and ctx.Err() returned.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case v := <-f.input:
		return v, nil
	case <-ctx.Done():
		f.cancel()
		var zero T
		return zero, ctx.Err()
	}
}
