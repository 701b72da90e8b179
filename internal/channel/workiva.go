package channel

import (
	"sync/atomic"

	"github.com/Workiva/go-datastructures/queue"
)

// ringClosed is the end-of-stream marker the last sender enqueues.
type ringClosed struct{}

// Workiva returns a channel backed by the go-datastructures ring buffer.
// The library rounds capacity up to the next power of two, so occupancy
// bounds are exact only for power-of-two capacities. Closing the last
// handle enqueues a marker behind all pending messages, which can block
// briefly while the ring is full.
func Workiva[T any](capacity int) (Sender[T], Receiver[T]) {
	c := &ringCore[T]{rb: queue.NewRingBuffer(uint64(capacity))}
	c.senders.Store(1)
	return &ringSender[T]{core: c}, &ringReceiver[T]{core: c}
}

type ringCore[T any] struct {
	rb      *queue.RingBuffer
	senders atomic.Int64
}

type ringSender[T any] struct {
	core   *ringCore[T]
	closed bool
}

func (s *ringSender[T]) Send(v T) {
	if s.closed {
		panic("channel: send on closed sender")
	}
	if err := s.core.rb.Put(v); err != nil {
		panic("channel: ring put: " + err.Error())
	}
}

func (s *ringSender[T]) Clone() Sender[T] {
	if s.closed {
		panic("channel: clone of closed sender")
	}
	s.core.senders.Add(1)
	return &ringSender[T]{core: s.core}
}

func (s *ringSender[T]) Close() {
	if s.closed {
		panic("channel: close of closed sender")
	}
	s.closed = true
	if s.core.senders.Add(-1) == 0 {
		if err := s.core.rb.Put(ringClosed{}); err != nil {
			panic("channel: ring put: " + err.Error())
		}
	}
}

type ringReceiver[T any] struct {
	core *ringCore[T]
	done bool
}

func (r *ringReceiver[T]) Recv() (T, bool) {
	var zero T
	if r.done {
		return zero, false
	}
	item, err := r.core.rb.Get()
	if err != nil {
		panic("channel: ring get: " + err.Error())
	}
	if _, closed := item.(ringClosed); closed {
		r.done = true
		return zero, false
	}
	return item.(T), true
}
