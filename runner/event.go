package runner

import "github.com/cropsolve/cropsolve/solve"

// EventKind tags the lifecycle events a task emits.
type EventKind int

const (
	// EventProgress reports a stage transition; Message holds the stage.
	EventProgress EventKind = iota

	// EventSolution delivers the solution; emitted once, before EventDone,
	// only on success.
	EventSolution

	// EventDone closes the lifecycle; Err is nil on success. Exactly one
	// per task, always last.
	EventDone
)

// String returns the wire name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventSolution:
		return "solution"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is one step of a task lifecycle.
type Event struct {
	Kind    EventKind
	Message string

	// Solution is set on EventSolution.
	Solution *solve.Solution

	// Err is set on a failed EventDone.
	Err error
}

// eventBuffer is the channel capacity per task: three stages, one
// solution, one done, with headroom. A full lifecycle fits without a
// consumer, so emitting never blocks the worker.
const eventBuffer = 8
