package executor

import "sync"

// NewGoroutine returns the baseline executor: one goroutine per task.
func NewGoroutine() Executor {
	return &goroutineExecutor{}
}

type goroutineExecutor struct {
	wg   sync.WaitGroup
	trap trap
}

func (e *goroutineExecutor) Spawn(task func()) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer e.trap.capture()
		task()
	}()
}

func (e *goroutineExecutor) JoinAll() {
	e.wg.Wait()
	e.trap.rethrow()
}
