// Package solve runs the full optimization pipeline: structural checks,
// validation, model construction, the backend solve, and extraction of
// the hectare allocation into domain terms.
//
// Run is the single entry point. It accepts a validated problem and an
// Options value selecting the backend (pure-Go simplex by default, HiGHS
// when linked), the wall-clock cap, and the extraction threshold.
//
// Outcome contract:
//   - optimal and time-limit-with-incumbent solves succeed; the Solution
//     records which of the two it was.
//   - an infeasible or unbounded model fails with the matching solver
//     sentinel wrapped, so callers can branch with errors.Is.
//   - validation errors fail with ErrInvalidProblem; the full report
//     stays reachable through errors.As on *ReportError.
//   - context cancellation fails with ErrCanceled and never returns a
//     partial solution.
//
// Totals in the extracted Solution are recomputed from the problem's
// per-hectare rates rather than read back from solver rows, so they stay
// meaningful even when the backend reports a scaled objective.
package solve
