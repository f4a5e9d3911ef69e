// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package processor

import (
	"context"
	"sync"
)

// Task is one in-flight submission. It moves from pending to exactly one of
// fulfilled or rejected, and never changes after that.
type Task struct {
	query  string
	cancel context.CancelFunc

	once    sync.Once
	done    chan struct{}
	mu      sync.Mutex
	outcome Outcome
}

func newTask(query string, cancel context.CancelFunc) *Task {
	return &Task{
		query:   query,
		cancel:  cancel,
		done:    make(chan struct{}),
		outcome: Outcome{Status: StatusPending},
	}
}

// Query returns the submitted text.
func (t *Task) Query() string { return t.query }

// Done is closed once the task has resolved.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel asks the task to stop waiting. A task that has not resolved yet
// will resolve as rejected with CancelledMessage.
func (t *Task) Cancel() { t.cancel() }

// Outcome returns the current outcome, which is pending until Done is closed.
func (t *Task) Outcome() Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outcome
}

// Wait blocks until the task resolves or ctx is done. In the latter case the
// returned outcome is still pending.
func (t *Task) Wait(ctx context.Context) Outcome {
	select {
	case <-t.done:
	case <-ctx.Done():
	}
	return t.Outcome()
}

func (t *Task) resolve(o Outcome) {
	t.once.Do(func() {
		t.mu.Lock()
		t.outcome = o
		t.mu.Unlock()
		close(t.done)
	})
}
