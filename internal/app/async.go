package app

import (
	"context"
	"sync"
)

// SerialQueue runs submitted functions one at a time, in submission order, on a
// single goroutine. State touched only from queued functions needs no lock.
// Submit never blocks, so queued functions may submit follow-up work.
type SerialQueue struct {
	mu      sync.Mutex
	ready   *sync.Cond
	closed  bool
	pending []func()
	done    chan struct{}
}

// NewSerialQueue starts a queue with room for capacity pending functions before it grows.
func NewSerialQueue(capacity int) *SerialQueue {
	q := &SerialQueue{
		pending: make([]func(), 0, max(capacity, 0)),
		done:    make(chan struct{}),
	}
	q.ready = sync.NewCond(&q.mu)

	go q.run()

	return q
}

func (q *SerialQueue) run() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.ready.Wait()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		task := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		task()
	}
}

// Submit enqueues fn. It reports false, without running fn, once the queue is closed.
func (q *SerialQueue) Submit(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.pending = append(q.pending, fn)
	q.ready.Signal()

	return true
}

// Close stops accepting work, runs what is already queued and waits for it to finish.
// It must not be called from a queued function.
func (q *SerialQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.ready.Broadcast()
	q.mu.Unlock()

	<-q.done
}

// Future is the pending result of an operation started with Go.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn on its own goroutine and returns a future for its result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Callback runs fn asynchronously and hands its outcome to deliver on queue.
// It is the completion-handler form of Go: both observe the same single call.
// When queue is closed before the result arrives, the result is dropped.
func Callback[T any](ctx context.Context, queue *SerialQueue, fn func(context.Context) (T, error), deliver func(T, error)) {
	f := Go(ctx, fn)

	go func() {
		<-f.done
		queue.Submit(func() { deliver(f.value, f.err) })
	}()
}
