// Package simplex is the default, pure-Go LP engine, built on gonum's
// dense simplex (gonum.org/v1/gonum/optimize/convex/lp).
//
// The bounded-variable allocation model is rewritten into the general
// inequality form gonum's Convert expects (variable bounds become explicit
// rows, maximization negates the costs), converted to standard form, and
// handed to lp.Simplex. Allocation-sized models (tens to a few hundred
// variables) solve in microseconds to milliseconds.
//
// Two caveats versus the HiGHS backend:
//
//   - The dense simplex cannot be interrupted mid-pivot, so the context is
//     only honored between phases. For the model sizes this module builds
//     that window is negligible.
//   - There is no incumbent tracking: a solve either finishes optimally or
//     reports an error; StatusTimeLimit is never produced here.
package simplex
