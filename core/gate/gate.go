package gate

import (
	"container/list"
	"context"
	"sync"
)

// Release hands the gate back. Calling it more than once is a no-op.
type Release func()

// Gate admits one holder at a time and queues the rest in arrival order.
// Ownership is handed directly to the oldest waiter on release, so a late
// caller can never overtake a queued one.
//
// Gate is not reentrant: acquiring it again while holding it blocks forever.
//
// The zero value is an open gate ready for use.
type Gate struct {
	mu      sync.Mutex
	held    bool
	waiters list.List // of chan struct{}, front is next in line
}

// New returns an open gate.
func New() *Gate {
	return &Gate{}
}

// Acquire blocks until it is the caller's turn and returns the release capability.
// If ctx is done first the caller leaves the queue and ctx.Err() is returned;
// the waiters behind it are not affected.
func (g *Gate) Acquire(ctx context.Context) (Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	if !g.held {
		g.held = true
		g.mu.Unlock()
		return g.releaser(), nil
	}
	ready := make(chan struct{})
	elem := g.waiters.PushBack(ready)
	g.mu.Unlock()

	select {
	case <-ready:
		return g.releaser(), nil
	case <-ctx.Done():
	}

	g.mu.Lock()
	select {
	case <-ready:
		// Ownership was handed over while ctx was being cancelled: pass it on.
		g.mu.Unlock()
		g.release()
	default:
		g.waiters.Remove(elem)
		g.mu.Unlock()
	}
	return nil, ctx.Err()
}

// TryAcquire takes the gate only if it is free and nobody is waiting.
func (g *Gate) TryAcquire() (Release, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.held {
		return nil, false
	}
	g.held = true
	return g.releaser(), true
}

// Waiters returns the number of queued acquisitions.
func (g *Gate) Waiters() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.waiters.Len()
}

func (g *Gate) releaser() Release {
	var once sync.Once
	return func() {
		once.Do(g.release)
	}
}

// release wakes the next waiter, keeping the gate held on its behalf,
// or opens the gate when the queue is empty.
func (g *Gate) release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if front := g.waiters.Front(); front != nil {
		g.waiters.Remove(front)
		close(front.Value.(chan struct{}))
		return
	}
	g.held = false
}
