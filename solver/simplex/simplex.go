package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/cropsolve/cropsolve/lpmodel"
	"github.com/cropsolve/cropsolve/solver"
)

// Engine solves allocation models with gonum's dense simplex. The zero
// value is ready to use; New exists for symmetry with the other backends.
type Engine struct{}

// New returns a ready simplex engine.
func New() *Engine { return &Engine{} }

// Name identifies the engine in logs and error messages.
func (*Engine) Name() string { return "simplex" }

// Solve rewrites m into gonum's general form and runs the dense simplex.
//
// Rewrite steps:
//  1. Costs are negated when m.Maximize (lp minimizes).
//  2. Every finite row bound becomes one G*x <= h row: upper bounds keep
//     their coefficients, lower bounds are negated.
//  3. Variable bounds become unit rows the same way; they must be explicit
//     because the standard-form conversion treats variables as free.
//  4. lp.Convert splits the free variables and adds slacks; lp.Simplex
//     solves the standard form; the original x is recovered as the
//     difference of the split halves.
//
// Outcome mapping: nil error from Simplex is StatusOptimal,
// lp.ErrInfeasible is StatusInfeasible, lp.ErrUnbounded is
// StatusUnbounded; anything else is an engine failure. opts.TimeLimit is
// not used (see the package comment); ctx is checked between phases.
//
// Complexity: the rewrite is O(rows * vars); the simplex itself is
// exponential worst case but polynomial in practice.
func (e *Engine) Solve(ctx context.Context, m *lpmodel.Model, opts solver.Options) (*solver.Result, error) {
	_ = opts // no tunables reach the dense simplex

	if m == nil {
		return nil, solver.ErrNilModel
	}
	n := m.NumVars()
	if n == 0 {
		return nil, solver.ErrEmptyModel
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := make([]float64, n)
	for i := range m.Vars {
		if m.Maximize {
			c[i] = -m.Vars[i].Cost
		} else {
			c[i] = m.Vars[i].Cost
		}
	}

	g, h := inequalityForm(m)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cNew, aNew, bNew := lp.Convert(c, g, h, nil, nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	optF, optX, err := lp.Simplex(cNew, aNew, bNew, 0, nil)
	switch {
	case err == nil:
		// Recover x from the split representation xt = [xp; xn; s].
		values := make([]float64, n)
		for i := 0; i < n; i++ {
			values[i] = optX[i] - optX[n+i]
		}
		objective := optF
		if m.Maximize {
			objective = -objective
		}

		return &solver.Result{
			Status:    solver.StatusOptimal,
			Objective: objective,
			Values:    values,
		}, nil

	case errors.Is(err, lp.ErrInfeasible):
		return &solver.Result{Status: solver.StatusInfeasible}, nil

	case errors.Is(err, lp.ErrUnbounded):
		return &solver.Result{Status: solver.StatusUnbounded}, nil

	default:
		return nil, fmt.Errorf("simplex: %w", err)
	}
}

// inequalityForm flattens m into G*x <= h. Each finite constraint bound
// contributes one row; each finite variable bound contributes one unit
// row. Lower bounds are negated into <= rows.
func inequalityForm(m *lpmodel.Model) (*mat.Dense, []float64) {
	n := m.NumVars()

	rows := 0
	for i := range m.Cons {
		if m.Cons[i].BoundedAbove() {
			rows++
		}
		if m.Cons[i].BoundedBelow() {
			rows++
		}
	}
	for i := range m.Vars {
		if !math.IsInf(m.Vars[i].Upper, 1) {
			rows++
		}
		if !math.IsInf(m.Vars[i].Lower, -1) {
			rows++
		}
	}

	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)

	r := 0
	for i := range m.Cons {
		con := &m.Cons[i]
		if con.BoundedAbove() {
			for _, t := range con.Terms {
				g.Set(r, t.Var, t.Coeff)
			}
			h[r] = con.Upper
			r++
		}
		if con.BoundedBelow() {
			for _, t := range con.Terms {
				g.Set(r, t.Var, -t.Coeff)
			}
			h[r] = -con.Lower
			r++
		}
	}
	for i := range m.Vars {
		v := &m.Vars[i]
		if !math.IsInf(v.Upper, 1) {
			g.Set(r, i, 1)
			h[r] = v.Upper
			r++
		}
		if !math.IsInf(v.Lower, -1) {
			g.Set(r, i, -1)
			h[r] = -v.Lower
			r++
		}
	}

	return g, h
}
