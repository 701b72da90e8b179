package executor

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// NewErrgroup returns an executor scheduling tasks through errgroup.Group.
// Task panics become group errors so JoinAll can surface the first one.
func NewErrgroup() Executor {
	return &errgroupExecutor{}
}

type errgroupExecutor struct {
	g errgroup.Group
}

func (e *errgroupExecutor) Spawn(task func()) {
	e.g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("task panicked: %v\n%s", r, debug.Stack())
			}
		}()
		task()
		return nil
	})
}

func (e *errgroupExecutor) JoinAll() {
	if err := e.g.Wait(); err != nil {
		panic("executor: " + err.Error())
	}
}
