// Package serial runs tasks one at a time, in the order they were scheduled.
//
// An Executor holds no data, only the completion signal of the most recently
// scheduled task. Every new task waits for that signal before running, so the
// chain of pending tasks is strictly FIFO. Scheduling never blocks.
//
// It only protects work that is routed through it; it is not a process-wide lock.
package serial

import (
	"context"
	"fmt"
	"sync"
)

// Result is the outcome of one scheduled task.
type Result[R any] struct {
	Value R
	Err   error
}

// Executor is a per-owner FIFO async lock. The zero value is ready to use.
// An Executor must not be copied after first use.
type Executor struct {
	mu   sync.Mutex
	tail chan struct{} // closed when the last scheduled task finished
}

// Schedule enqueues task and returns immediately. The returned channel
// receives exactly one Result once the task has run.
// A failing (or panicking) task only affects its own Result.
func Schedule[R any](e *Executor, task func() (R, error)) <-chan Result[R] {
	out := make(chan Result[R], 1)
	done := make(chan struct{})

	e.mu.Lock()
	prev := e.tail
	e.tail = done
	e.mu.Unlock()

	go func() {
		defer close(done)
		if prev != nil {
			<-prev
		}
		v, err := run(task)
		out <- Result[R]{Value: v, Err: err}
	}()
	return out
}

// Do schedules task and waits for its result.
// If ctx ends first, Do returns ctx.Err(); the task is not cancelled and
// still runs in its turn.
func Do[R any](ctx context.Context, e *Executor, task func() (R, error)) (R, error) {
	ch := Schedule(e, task)
	select {
	case res := <-ch:
		return res.Value, res.Err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

func run[R any](task func() (R, error)) (v R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("serial: task panicked: %v", r)
		}
	}()
	return task()
}
