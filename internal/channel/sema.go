package channel

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Sema returns a channel built on two weighted semaphores, one counting
// free slots and one counting queued items. The last sender to close
// releases a phantom item permit; the receiver recognizes closure when it
// acquires a permit and finds the queue empty, which can only happen after
// every real item has been drained.
func Sema[T any](capacity int) (Sender[T], Receiver[T]) {
	c := &semaCore[T]{
		free:  semaphore.NewWeighted(int64(capacity)),
		items: semaphore.NewWeighted(int64(capacity) + 1),
		buf:   make([]T, capacity),
	}
	// Start with no item permits available. The extra permit beyond
	// capacity is the phantom slot, so releasing it on close never
	// exceeds the semaphore size even when the buffer is full.
	c.items.TryAcquire(int64(capacity) + 1)
	c.senders.Store(1)
	return &semaSender[T]{core: c}, &semaReceiver[T]{core: c}
}

type semaCore[T any] struct {
	free    *semaphore.Weighted
	items   *semaphore.Weighted
	mu      sync.Mutex
	buf     []T
	head    int
	count   int
	senders atomic.Int64
}

func (c *semaCore[T]) send(v T) {
	if err := c.free.Acquire(context.Background(), 1); err != nil {
		panic("channel: acquiring free slot: " + err.Error())
	}
	c.mu.Lock()
	c.buf[(c.head+c.count)%len(c.buf)] = v
	c.count++
	c.mu.Unlock()
	c.items.Release(1)
}

func (c *semaCore[T]) recv() (T, bool) {
	var zero T
	if err := c.items.Acquire(context.Background(), 1); err != nil {
		panic("channel: acquiring item: " + err.Error())
	}
	c.mu.Lock()
	if c.count == 0 {
		// Phantom permit from the last Close. Put it back so later
		// calls observe closure without blocking.
		c.mu.Unlock()
		c.items.Release(1)
		return zero, false
	}
	v := c.buf[c.head]
	c.buf[c.head] = zero
	c.head = (c.head + 1) % len(c.buf)
	c.count--
	c.mu.Unlock()
	c.free.Release(1)
	return v, true
}

func (c *semaCore[T]) closeSender() {
	if c.senders.Add(-1) == 0 {
		c.items.Release(1)
	}
}

type semaSender[T any] struct {
	core   *semaCore[T]
	closed bool
}

func (s *semaSender[T]) Send(v T) {
	if s.closed {
		panic("channel: send on closed sender")
	}
	s.core.send(v)
}

func (s *semaSender[T]) Clone() Sender[T] {
	if s.closed {
		panic("channel: clone of closed sender")
	}
	s.core.senders.Add(1)
	return &semaSender[T]{core: s.core}
}

func (s *semaSender[T]) Close() {
	if s.closed {
		panic("channel: close of closed sender")
	}
	s.closed = true
	s.core.closeSender()
}

type semaReceiver[T any] struct {
	core *semaCore[T]
}

func (r *semaReceiver[T]) Recv() (T, bool) {
	return r.core.recv()
}
