// Package highs solves allocation models with the HiGHS solver through
// the gohighs cgo binding.
//
// The translation is direct: allocation models already use the
// lower <= A*x <= upper row convention HiGHS expects, with infinities
// marking absent bounds, so no row flipping or variable splitting is
// needed. The backend enforces the time cap natively via the solver's
// time_limit option and returns the incumbent when the cap expires with
// a feasible point in hand.
//
// Classified outcomes (optimal, time_limit, infeasible, unbounded) come
// back as a solver.Result with a nil error; a cap expiring before any
// feasible point yields solver.ErrNoIncumbent.
//
// Building this package requires the HiGHS C library at link time.
package highs
