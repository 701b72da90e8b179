package executor

import (
	"fmt"

	"github.com/sourcegraph/conc"
)

// NewConc returns an executor running tasks under a conc.WaitGroup, which
// catches task panics itself. JoinAll rethrows the first one in the same
// format as the other executors.
func NewConc() Executor {
	return &concExecutor{}
}

type concExecutor struct {
	wg conc.WaitGroup
}

func (e *concExecutor) Spawn(task func()) {
	e.wg.Go(task)
}

func (e *concExecutor) JoinAll() {
	if r := e.wg.WaitAndRecover(); r != nil {
		panic(fmt.Sprintf("executor: task panicked: %v\n%s", r.Value, r.Stack))
	}
}
