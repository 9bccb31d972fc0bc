package lpmodel

import (
	"errors"
	"math"
)

// ErrNilProblem is returned when Build receives a nil problem.
var ErrNilProblem = errors.New("lpmodel: nil problem")

// Variable is one continuous hectare-allocation decision: the area of
// Problem.Crops[Crop] planted on Problem.Parcels[Parcel].
type Variable struct {
	// Name follows the allocate_{crop}_{parcel} convention.
	Name string

	// Crop and Parcel index into the source problem's slices.
	Crop   int
	Parcel int

	// Lower and Upper bound the variable; for allocations this is
	// [0, parcel area].
	Lower float64
	Upper float64

	// Cost is the objective coefficient: quality-adjusted profit per
	// hectare, scaled by the profit objective weight.
	Cost float64
}

// Term is one nonzero coefficient of a constraint row.
type Term struct {
	Var   int
	Coeff float64
}

// Constraint is a two-sided linear row: Lower <= sum(Coeff*x) <= Upper.
// One-sided rows use -Inf / +Inf on the unbounded side.
type Constraint struct {
	Name  string
	Terms []Term
	Lower float64
	Upper float64
}

// BoundedBelow reports whether the row has a finite lower bound.
func (c *Constraint) BoundedBelow() bool { return !math.IsInf(c.Lower, -1) }

// BoundedAbove reports whether the row has a finite upper bound.
func (c *Constraint) BoundedAbove() bool { return !math.IsInf(c.Upper, 1) }

// Model is the backend-neutral linear program.
//
// Vars are ordered by (crop index, parcel index); Cons follow the fixed
// build order documented on Build. Notes lists problem rules that the
// continuous formulation cannot enforce.
type Model struct {
	// Maximize is always true for allocation models; kept explicit so the
	// solver backends need no convention knowledge.
	Maximize bool

	Vars []Variable
	Cons []Constraint

	// Notes lists rules present in the problem but not encoded as rows
	// (diversity counts, rotation rules, pairing constraints).
	Notes []string

	index map[pairKey]int
}

type pairKey struct{ crop, parcel int }

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int { return len(m.Vars) }

// NumRows returns the number of constraint rows.
func (m *Model) NumRows() int { return len(m.Cons) }

// VarFor returns the variable index for the (crop, parcel) pair, or false
// when the pair is soil-incompatible and holds no variable.
func (m *Model) VarFor(crop, parcel int) (int, bool) {
	i, ok := m.index[pairKey{crop: crop, parcel: parcel}]

	return i, ok
}
