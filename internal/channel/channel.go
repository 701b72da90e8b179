// Package channel defines the bounded channel capability the benchmarks
// exercise, with one implementation per underlying channel technology.
package channel

// Sender is the producing half of a channel. Send suspends the calling
// goroutine while the channel is at capacity. Handles are independent:
// Clone returns a new handle to the same logical channel, and the channel
// closes for receiving only once every handle has been closed.
//
// Using a handle after closing it is a programming error and panics.
type Sender[T any] interface {
	Send(v T)
	Clone() Sender[T]
	Close()
}

// Receiver is the consuming half of a channel, owned by a single consumer.
// Recv suspends while the channel is empty and open. It returns ok=false
// exactly when the channel is closed and drained, and keeps reporting
// closure on every later call.
type Receiver[T any] interface {
	Recv() (v T, ok bool)
}

// Factory constructs a connected sender/receiver pair bounded at capacity.
// Capacity must be positive. Each benchmark iteration calls its factory
// once and discards the pair at the end, so implementations never share
// state across iterations.
type Factory[T any] func(capacity int) (Sender[T], Receiver[T])
