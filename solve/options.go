package solve

import (
	"time"

	"github.com/cropsolve/cropsolve/solver"
	"github.com/cropsolve/cropsolve/solver/simplex"
)

// DefaultMinAllocation is the smallest area, in hectares, kept by the
// extractor. Values below it are solver noise, not plantable land.
const DefaultMinAllocation = 1e-6

// Stage names passed to Options.OnProgress, in run order.
const (
	StageBuild   = "building model"
	StageSolve   = "solving"
	StageExtract = "extracting solution"
)

// Options tunes one Run call. The zero value is usable: normalize fills
// every unset field with its default.
type Options struct {
	// TimeLimit caps the wall-clock solve time. Non-positive falls back
	// to solver.DefaultTimeLimit.
	TimeLimit time.Duration

	// Backend picks the LP engine. Nil selects the pure-Go simplex.
	Backend solver.Solver

	// MinAllocation is the extraction threshold in hectares.
	// Non-positive falls back to DefaultMinAllocation.
	MinAllocation float64

	// Verbose lets the backend emit its native progress output.
	Verbose bool

	// OnProgress, when set, receives each stage name (StageBuild,
	// StageSolve, StageExtract) as the run advances. Calls happen on the
	// Run goroutine; the hook must not block.
	OnProgress func(stage string)
}

// DefaultOptions returns the standard configuration: pure-Go simplex,
// 300 s cap, 1e-6 ha extraction threshold.
func DefaultOptions() Options {
	return Options{
		TimeLimit:     solver.DefaultTimeLimit,
		Backend:       simplex.New(),
		MinAllocation: DefaultMinAllocation,
	}
}

// normalize fills unset fields in place.
func (o *Options) normalize() {
	if o.TimeLimit <= 0 {
		o.TimeLimit = solver.DefaultTimeLimit
	}
	if o.Backend == nil {
		o.Backend = simplex.New()
	}
	if o.MinAllocation <= 0 {
		o.MinAllocation = DefaultMinAllocation
	}
}

// progress invokes the hook when one is set.
func (o *Options) progress(stage string) {
	if o.OnProgress != nil {
		o.OnProgress(stage)
	}
}
