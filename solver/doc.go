// Package solver defines the contract between the LP model and the
// numerical engines that solve it.
//
// A backend receives a *lpmodel.Model plus Options and returns a Result
// whose Status classifies the outcome. Well-understood outcomes - optimal,
// time limit with an incumbent, infeasible, unbounded - are data, not
// errors; a non-nil error means the engine itself failed and the attempt
// should be treated as StatusError.
//
// Two engines ship with this module:
//
//   - simplex (pure Go, the default) - dense simplex on gonum; exact
//     optima for the model sizes this planner produces.
//   - highs - bindings to the HiGHS solver; supports real wall-clock time
//     limits with incumbent retrieval.
//
// Both are stateless and safe for concurrent use; any other engine that
// implements the Solver interface can be swapped in through
// solve.Options.Backend.
package solver
