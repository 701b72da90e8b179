package channel

import "sync/atomic"

// Native returns a channel backed by a buffered Go channel. Sender handles
// share a refcount so the buffer is closed by whichever handle is closed
// last.
func Native[T any](capacity int) (Sender[T], Receiver[T]) {
	c := &nativeCore[T]{ch: make(chan T, capacity)}
	c.senders.Store(1)
	return &nativeSender[T]{core: c}, nativeReceiver[T]{core: c}
}

type nativeCore[T any] struct {
	ch      chan T
	senders atomic.Int64
}

type nativeSender[T any] struct {
	core   *nativeCore[T]
	closed bool
}

func (s *nativeSender[T]) Send(v T) {
	if s.closed {
		panic("channel: send on closed sender")
	}
	s.core.ch <- v
}

func (s *nativeSender[T]) Clone() Sender[T] {
	if s.closed {
		panic("channel: clone of closed sender")
	}
	s.core.senders.Add(1)
	return &nativeSender[T]{core: s.core}
}

func (s *nativeSender[T]) Close() {
	if s.closed {
		panic("channel: close of closed sender")
	}
	s.closed = true
	if s.core.senders.Add(-1) == 0 {
		close(s.core.ch)
	}
}

type nativeReceiver[T any] struct {
	core *nativeCore[T]
}

func (r nativeReceiver[T]) Recv() (T, bool) {
	v, ok := <-r.core.ch
	return v, ok
}
