package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	value U
	err   error
	done  chan struct{}
}

// Await waits for the computation to complete and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for the computation at most timeout.
// Returns ErrTimeout if the future is still running after that.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the computation finishes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async runs fn(ctx, param) in its own goroutine and returns a Future for its result.
// If ctx is already done, fn is not called and the future resolves to ctx.Err().
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents running work nobody is waiting for
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for every future and returns their values in order.
// The first error encountered, in argument order, is returned.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, future := range futures {
		value, err := future.Await()
		if err != nil {
			return nil, err
		}
		results[i] = value
	}
	return results, nil
}

// WaitAny returns the index and result of the first future to complete.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type result struct {
		index int
		value U
		err   error
	}
	// Buffered so late finishers never block.
	done := make(chan result, len(futures))

	for i, future := range futures {
		go func() {
			value, err := future.Await()
			done <- result{index: i, value: value, err: err}
		}()
	}

	res := <-done
	return res.index, res.value, res.err
}
