package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cropsolve/cropsolve/lpmodel"
)

// Sentinels shared by the backends and the drivers above them. Backends
// report infeasible and unbounded models as classified Results, not
// errors; ErrInfeasible and ErrUnbounded exist for callers that must
// turn those outcomes into failures.
var (
	// ErrNilModel is returned when a backend receives a nil model.
	ErrNilModel = errors.New("solver: nil model")

	// ErrEmptyModel is returned when the model has no variables.
	ErrEmptyModel = errors.New("solver: model has no variables")

	// ErrInfeasible marks a model no point can satisfy.
	ErrInfeasible = errors.New("solver: problem is infeasible")

	// ErrUnbounded marks a model whose objective grows without limit.
	ErrUnbounded = errors.New("solver: problem is unbounded")

	// ErrNoIncumbent is returned when the time limit expires before any
	// feasible point was found.
	ErrNoIncumbent = errors.New("solver: time limit reached with no incumbent")

	// ErrUnsupported is returned for model features a backend cannot
	// express (currently none; reserved for integer extensions).
	ErrUnsupported = errors.New("solver: unsupported model feature")
)

// Status classifies the outcome of one solve attempt.
type Status int

const (
	// StatusOptimal - the engine proved optimality.
	StatusOptimal Status = iota

	// StatusTimeLimit - the wall-clock limit expired but a feasible
	// incumbent exists; the values are usable yet possibly suboptimal.
	StatusTimeLimit

	// StatusInfeasible - no point satisfies all constraints.
	StatusInfeasible

	// StatusUnbounded - the objective can grow without limit; in an
	// allocation model this indicates corrupt input (all variables are
	// bounded by parcel areas).
	StatusUnbounded

	// StatusError - the engine failed; no values are available.
	StatusError
)

// String returns the wire name of the status, used in logs, metrics
// labels and exported solutions.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimit:
		return "time_limit"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Success reports whether the attempt produced usable variable values.
func (s Status) Success() bool {
	return s == StatusOptimal || s == StatusTimeLimit
}

// ParseStatus converts a wire name back into a Status.
func ParseStatus(raw string) (Status, error) {
	switch raw {
	case "optimal":
		return StatusOptimal, nil
	case "time_limit":
		return StatusTimeLimit, nil
	case "infeasible":
		return StatusInfeasible, nil
	case "unbounded":
		return StatusUnbounded, nil
	case "error":
		return StatusError, nil
	default:
		return StatusError, fmt.Errorf("solver: unknown status %q", raw)
	}
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// Result is the raw outcome of one solve attempt. Values is indexed by
// model variable and populated only when Status.Success().
type Result struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Options configures a solve attempt.
type Options struct {
	// TimeLimit bounds the wall-clock solve time. It is a soft bound:
	// the backend keeps whatever incumbent it holds when the limit
	// expires, it never resumes solving.
	TimeLimit time.Duration

	// Verbose lets the backend emit its native progress output.
	Verbose bool
}

// DefaultTimeLimit bounds a solve attempt unless the caller overrides it.
const DefaultTimeLimit = 300 * time.Second

// DefaultOptions returns the standard solve configuration.
func DefaultOptions() Options {
	return Options{TimeLimit: DefaultTimeLimit}
}

// Solver is the minimal engine interface: bounded continuous variables, a
// linear objective, two-sided linear rows. Implementations must be
// stateless and safe for concurrent use.
type Solver interface {
	// Name identifies the engine in logs and error messages.
	Name() string

	// Solve runs one attempt. Classified outcomes (optimal, time limit,
	// infeasible, unbounded) are returned as Result statuses with a nil
	// error; a non-nil error means the engine itself failed.
	Solve(ctx context.Context, m *lpmodel.Model, opts Options) (*Result, error)
}
