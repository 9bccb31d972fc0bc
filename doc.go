// Package cropsolve plans agricultural land use: given crops, land
// parcels and farm-wide resource limits, it builds a linear program,
// solves it and explains the optimal allocation.
//
// The pipeline runs in five stages, one package per concern:
//
//	agro/    — the domain model: crops, parcels, constraints, objectives,
//	           compatibility rules, defaults and the validation catalog
//	lpmodel/ — turns a validated Problem into a backend-neutral LP
//	           (variables only for compatible crop-parcel pairs)
//	solver/  — the engine contract plus two backends: a pure-Go dense
//	           simplex (gonum) and a HiGHS binding (gohighs)
//	solve/   — the driver: validate, build, solve, classify, extract a
//	           Solution with totals recomputed from domain rates
//	analyze/ — KPIs, resource usage, bottlenecks, per-crop and per-parcel
//	           summaries, recommendations and a text report
//
// Around the core sit the delivery surfaces:
//
//	dataio/  — JSON problem documents, CSV scenario folders, solution
//	           exports (JSON, CSV, XLSX) and starter templates
//	runner/  — a bounded pool solving problems asynchronously with
//	           progress events, cancellation and Prometheus metrics
//	httpapi/ — the REST service over the runner
//	sample/  — three built-in scenarios, from smoke test to stress test
//	cmd/     — the cropsolve CLI and the cropsolved HTTP daemon
//
// Minimal use:
//
//	p := sample.Basic()
//	sol, err := solve.Run(ctx, p, solve.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(analyze.Report(p, sol))
//
// Identical inputs yield identical solutions: the build order is
// deterministic and the default backend is seed-free.
package cropsolve
