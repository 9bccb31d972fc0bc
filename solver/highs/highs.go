package highs

import (
	"context"
	"fmt"
	"time"

	gohighs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/cropsolve/cropsolve/lpmodel"
	"github.com/cropsolve/cropsolve/solver"
)

// Engine drives the HiGHS solver. The zero value is ready to use; every
// Solve call creates and disposes its own native solver instance, so one
// Engine may serve concurrent solves.
type Engine struct{}

// New returns a HiGHS-backed engine.
func New() *Engine { return &Engine{} }

// Name returns the backend identifier used in options and logs.
func (*Engine) Name() string { return "highs" }

// Solve translates m and runs HiGHS on it.
//
// The time cap is the tighter of opts.TimeLimit and the context deadline.
// A cap expiry with an incumbent yields StatusTimeLimit and the incumbent
// values; without one it is an ErrNoIncumbent error. Infeasible and
// unbounded models are classified results, not errors.
func (e *Engine) Solve(ctx context.Context, m *lpmodel.Model, opts solver.Options) (*solver.Result, error) {
	if m == nil {
		return nil, solver.ErrNilModel
	}
	if m.NumVars() == 0 {
		return nil, solver.ErrEmptyModel
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("highs: %w", err)
	}

	sol, err := Translate(m).Solve(
		gohighs.WithTimeLimit(effectiveLimit(ctx, opts.TimeLimit)),
		gohighs.WithOutput(opts.Verbose),
	)
	if err != nil {
		return nil, fmt.Errorf("highs: %w", err)
	}

	switch {
	case sol.IsOptimal():
		return &solver.Result{
			Status:    solver.StatusOptimal,
			Objective: sol.Objective,
			Values:    sol.ColValues,
		}, nil

	case sol.IsTimeLimit():
		if !sol.HasSolution() {
			return nil, fmt.Errorf("highs: %w", solver.ErrNoIncumbent)
		}
		return &solver.Result{
			Status:    solver.StatusTimeLimit,
			Objective: sol.Objective,
			Values:    sol.ColValues,
		}, nil

	case sol.IsInfeasible():
		return &solver.Result{Status: solver.StatusInfeasible}, nil

	case sol.IsUnbounded():
		return &solver.Result{Status: solver.StatusUnbounded}, nil

	default:
		return nil, fmt.Errorf("highs: unexpected model status %v", sol.Status)
	}
}

// Translate converts a backend-neutral allocation model into the gohighs
// form: column costs and bounds copied per variable, one matrix row per
// constraint with zero coefficients already absent.
func Translate(m *lpmodel.Model) *gohighs.Model {
	n := m.NumVars()
	hm := &gohighs.Model{
		Maximize: m.Maximize,
		ColCosts: make([]float64, n),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
		RowLower: make([]float64, m.NumRows()),
		RowUpper: make([]float64, m.NumRows()),
	}

	for i := range m.Vars {
		hm.ColCosts[i] = m.Vars[i].Cost
		hm.ColLower[i] = m.Vars[i].Lower
		hm.ColUpper[i] = m.Vars[i].Upper
	}

	for r := range m.Cons {
		con := &m.Cons[r]
		hm.RowLower[r] = con.Lower
		hm.RowUpper[r] = con.Upper
		for _, t := range con.Terms {
			hm.ConstMatrix = append(hm.ConstMatrix, gohighs.Nonzero{
				Row: r,
				Col: t.Var,
				Val: t.Coeff,
			})
		}
	}

	return hm
}

// effectiveLimit returns the solve cap in seconds: opts.TimeLimit (or the
// package default when unset), shrunk to the context deadline when that
// is tighter. Never negative.
func effectiveLimit(ctx context.Context, limit time.Duration) float64 {
	if limit <= 0 {
		limit = solver.DefaultTimeLimit
	}
	if dl, ok := ctx.Deadline(); ok {
		if rem := time.Until(dl); rem < limit {
			limit = rem
		}
	}
	if limit < 0 {
		limit = 0
	}

	return limit.Seconds()
}
