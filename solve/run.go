package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/lpmodel"
	"github.com/cropsolve/cropsolve/solver"
)

var (
	// ErrNilProblem is returned when Run receives a nil problem.
	ErrNilProblem = errors.New("solve: nil problem")

	// ErrInvalidProblem is returned when validation finds errors. The
	// full report travels on the wrapping *ReportError.
	ErrInvalidProblem = errors.New("solve: problem failed validation")

	// ErrCanceled is returned when the caller's context ends the run.
	// No partial solution is ever returned alongside it.
	ErrCanceled = errors.New("solve: run canceled")
)

// ReportError wraps ErrInvalidProblem and carries the validation report
// that blocked the run. Match it with errors.As.
type ReportError struct {
	Report *agro.Report
}

// Error names the first blocking finding; the rest stay on Report.
func (e *ReportError) Error() string {
	if e.Report == nil || len(e.Report.Errors) == 0 {
		return ErrInvalidProblem.Error()
	}

	return fmt.Sprintf("%s: %s", ErrInvalidProblem.Error(), e.Report.Errors[0])
}

// Unwrap ties the wrapper to the ErrInvalidProblem sentinel.
func (e *ReportError) Unwrap() error { return ErrInvalidProblem }

// Run executes the pipeline on p and returns the extracted solution.
//
// Stages, in order (each reported through opts.OnProgress):
//  1. Gate - QuickCheck for structural failures, then the full Validate
//     catalog; any blocking finding stops the run with *ReportError.
//  2. StageBuild - lpmodel.Build.
//  3. StageSolve - the backend runs under the tighter of opts.TimeLimit
//     and ctx. An infeasible model yields solver.ErrInfeasible, an
//     unbounded one solver.ErrUnbounded, caller cancellation ErrCanceled.
//  4. StageExtract - allocations at or above opts.MinAllocation become
//     the Solution; totals are recomputed from the problem's rates.
//
// Run never mutates p and is safe for concurrent use with distinct
// problems.
func Run(ctx context.Context, p *agro.Problem, opts Options) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	opts.normalize()

	if err := p.QuickCheck(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	if report := agro.Validate(p); !report.OK() {
		return nil, &ReportError{Report: report}
	}

	opts.progress(StageBuild)
	m, err := lpmodel.Build(p)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	opts.progress(StageSolve)
	sctx, cancel := context.WithTimeout(ctx, opts.TimeLimit)
	defer cancel()

	start := time.Now()
	res, err := opts.Backend.Solve(sctx, m, solver.Options{
		TimeLimit: opts.TimeLimit,
		Verbose:   opts.Verbose,
	})
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			// The caller's context ended the run; the solve cap would
			// have fired on sctx alone.
			return nil, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
		}

		return nil, fmt.Errorf("solve: backend %s: %w", opts.Backend.Name(), err)
	}

	switch res.Status {
	case solver.StatusOptimal, solver.StatusTimeLimit:
		// Usable point; fall through to extraction.
	case solver.StatusInfeasible:
		return nil, fmt.Errorf("solve: %w", solver.ErrInfeasible)
	case solver.StatusUnbounded:
		return nil, fmt.Errorf("solve: %w", solver.ErrUnbounded)
	default:
		return nil, fmt.Errorf("solve: backend %s finished with status %s",
			opts.Backend.Name(), res.Status)
	}

	opts.progress(StageExtract)
	sol := extract(p, m, res, opts.MinAllocation)
	sol.SolveSeconds = elapsed.Seconds()

	return sol, nil
}
