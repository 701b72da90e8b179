package executor

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// NewAnts returns an executor that submits tasks to the ants default pool.
// The pool is a process-lifetime singleton shared by every instance; the
// per-instance WaitGroup keeps JoinAll scoped to this instance's own
// batch. The default pool grows on demand, so tasks blocked on channel
// operations cannot starve the rest of the topology out of workers.
func NewAnts() Executor {
	return &antsExecutor{}
}

type antsExecutor struct {
	wg   sync.WaitGroup
	trap trap
}

func (e *antsExecutor) Spawn(task func()) {
	e.wg.Add(1)
	err := ants.Submit(func() {
		defer e.wg.Done()
		defer e.trap.capture()
		task()
	})
	if err != nil {
		e.wg.Done()
		panic("executor: ants submit: " + err.Error())
	}
}

func (e *antsExecutor) JoinAll() {
	e.wg.Wait()
	e.trap.rethrow()
}
