// Package executor defines the task-scheduling capability benchmarks run
// on, with one implementation per scheduling runtime.
package executor

import (
	"fmt"
	"runtime/debug"
	"sort"
	"sync/atomic"
)

// Executor schedules units of asynchronous work. Spawn enqueues a task and
// returns immediately; JoinAll blocks until every task spawned on this
// instance has completed, then panics if any of them panicked. JoinAll
// covers all outstanding work, including tasks spawned after an earlier
// JoinAll returned.
//
// An Executor is not safe for concurrent use by multiple spawning
// goroutines. The tasks themselves run concurrently.
type Executor interface {
	Spawn(task func())
	JoinAll()
}

// Factory constructs a fresh executor for one benchmark iteration.
type Factory func() Executor

// DefaultName is the executor used when none is requested.
const DefaultName = "goroutine"

// Registry maps executor names to constructors.
func Registry() map[string]Factory {
	return map[string]Factory{
		"goroutine": NewGoroutine,
		"errgroup":  NewErrgroup,
		"ants":      NewAnts,
		"conc":      NewConc,
	}
}

// Names lists the registered executors in stable order.
func Names() []string {
	reg := Registry()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// trap records the first panic observed across a batch of tasks so the
// join can surface it after the remaining tasks finish.
type trap struct {
	first atomic.Pointer[taskPanic]
}

type taskPanic struct {
	value any
	stack []byte
}

// capture must be deferred directly inside the task wrapper.
func (t *trap) capture() {
	if r := recover(); r != nil {
		t.first.CompareAndSwap(nil, &taskPanic{value: r, stack: debug.Stack()})
	}
}

// rethrow panics with the first captured task panic, if any.
func (t *trap) rethrow() {
	if p := t.first.Load(); p != nil {
		panic(fmt.Sprintf("executor: task panicked: %v\n%s", p.value, p.stack))
	}
}
