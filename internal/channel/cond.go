package channel

import "sync"

// Cond returns a channel implemented directly on a mutex-protected ring
// buffer with one condition variable per direction. It is the plain
// baseline the library-backed implementations are compared against.
func Cond[T any](capacity int) (Sender[T], Receiver[T]) {
	c := &condCore[T]{
		buf:     make([]T, capacity),
		senders: 1,
	}
	c.notFull = sync.NewCond(&c.mu)
	c.notEmpty = sync.NewCond(&c.mu)
	return &condSender[T]{core: c}, condReceiver[T]{core: c}
}

type condCore[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	buf      []T
	head     int
	count    int
	senders  int
}

func (c *condCore[T]) send(v T) {
	c.mu.Lock()
	for c.count == len(c.buf) {
		c.notFull.Wait()
	}
	c.buf[(c.head+c.count)%len(c.buf)] = v
	c.count++
	c.notEmpty.Signal()
	c.mu.Unlock()
}

func (c *condCore[T]) recv() (T, bool) {
	var zero T
	c.mu.Lock()
	for c.count == 0 && c.senders > 0 {
		c.notEmpty.Wait()
	}
	if c.count == 0 {
		c.mu.Unlock()
		return zero, false
	}
	v := c.buf[c.head]
	c.buf[c.head] = zero
	c.head = (c.head + 1) % len(c.buf)
	c.count--
	c.notFull.Signal()
	c.mu.Unlock()
	return v, true
}

func (c *condCore[T]) clone() {
	c.mu.Lock()
	c.senders++
	c.mu.Unlock()
}

func (c *condCore[T]) closeSender() {
	c.mu.Lock()
	c.senders--
	if c.senders == 0 {
		c.notEmpty.Broadcast()
	}
	c.mu.Unlock()
}

type condSender[T any] struct {
	core   *condCore[T]
	closed bool
}

func (s *condSender[T]) Send(v T) {
	if s.closed {
		panic("channel: send on closed sender")
	}
	s.core.send(v)
}

func (s *condSender[T]) Clone() Sender[T] {
	if s.closed {
		panic("channel: clone of closed sender")
	}
	s.core.clone()
	return &condSender[T]{core: s.core}
}

func (s *condSender[T]) Close() {
	if s.closed {
		panic("channel: close of closed sender")
	}
	s.closed = true
	s.core.closeSender()
}

type condReceiver[T any] struct {
	core *condCore[T]
}

func (r condReceiver[T]) Recv() (T, bool) {
	return r.core.recv()
}
