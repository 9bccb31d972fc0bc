package runner

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/solve"
)

// Task is the handle of one asynchronous solve run.
type Task struct {
	// ID is the unique task identifier.
	ID uuid.UUID

	// Problem is the problem being solved. The pool never mutates it and
	// neither may callers while the task is in flight.
	Problem *agro.Problem

	events chan Event
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	log      []string
	solution *solve.Solution
	err      error
}

func newTask(prob *agro.Problem, cancel context.CancelFunc) *Task {
	return &Task{
		ID:      uuid.New(),
		Problem: prob,
		events:  make(chan Event, eventBuffer),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Events returns the lifecycle stream. It is closed after EventDone.
func (t *Task) Events() <-chan Event { return t.events }

// Cancel abandons the run. Safe to call at any point, including after the
// task finished.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the task finishes or ctx ends, then returns the
// outcome. After the task is done it returns immediately.
func (t *Task) Wait(ctx context.Context) (*solve.Solution, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.done:
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.solution, t.err
}

// Done reports whether the task has finished.
func (t *Task) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Progress returns a copy of the stage log recorded so far.
func (t *Task) Progress() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.log))
	copy(out, t.log)

	return out
}

// recordProgress appends one stage and emits the matching event.
func (t *Task) recordProgress(stage string) {
	t.mu.Lock()
	t.log = append(t.log, stage)
	t.mu.Unlock()

	t.emit(Event{Kind: EventProgress, Message: stage})
}

// finish stores the outcome, emits the terminal events and closes the
// stream. Called exactly once, from the worker goroutine.
func (t *Task) finish(sol *solve.Solution, err error) {
	t.mu.Lock()
	t.solution = sol
	t.err = err
	t.mu.Unlock()

	if sol != nil && err == nil {
		t.emit(Event{Kind: EventSolution, Solution: sol})
	}
	t.emit(Event{Kind: EventDone, Err: err})

	close(t.events)
	close(t.done)
}

// emit never blocks: the buffer holds a full lifecycle (at most three
// progress events, one solution, one done), and nothing sends after close.
func (t *Task) emit(ev Event) {
	t.events <- ev
}
