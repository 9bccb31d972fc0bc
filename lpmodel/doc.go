// Package lpmodel translates an agro.Problem into a backend-neutral linear
// program whose decision variables are hectare allocations of one crop on
// one parcel.
//
// The produced Model is deliberately minimal: continuous bounded variables,
// a linear objective, and two-sided linear constraint rows. Any engine that
// understands this shape (see the solver subpackages) can solve it; nothing
// here depends on a particular solver library.
//
// Construction is structural, not numerical:
//
//   - One variable per soil-compatible (crop, parcel) pair, bounded
//     [0, parcel.Area]. Incompatible pairs get no variable at all, which
//     both halves the problem size and rules out spurious near-zero
//     allocations on wrong soils.
//   - The objective maximizes quality-adjusted profit.
//   - Constraint rows cover land capacity, the global water/labor/budget
//     budgets, optional fertilizer/pesticide ceilings, and per-crop
//     minimum/maximum total areas.
//
// Diversity counts, rotation rules and crop incompatibilities need a
// discrete "is planted" indicator and are therefore outside this continuous
// formulation; Build records each skipped rule in Model.Notes so callers
// can surface the limitation instead of silently dropping it.
//
// Build is deterministic: the same Problem always yields the same variable
// and row ordering, which keeps solver output and downstream exports
// reproducible.
package lpmodel
