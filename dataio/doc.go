// Package dataio moves planning problems and solutions between the in-memory
// model and the disk formats used by the tooling.
//
// Three families of helpers live here:
//
//   - JSON documents: LoadProblemJSON / SaveProblemJSON round-trip a full
//     agro.Problem; SaveSolutionJSON writes a solution bundled with its
//     analytics (KPIs, resource usage, summaries, recommendations).
//
//   - CSV scenarios: a scenario is a directory holding crops.csv,
//     parcels.csv and constraints.csv. LoadScenario reads one (all three
//     files or ErrIncompleteScenario), SaveScenario writes one, Scenarios
//     lists the complete ones under a root. LoadProblemCSV is the file-level
//     loader behind LoadScenario; it tolerates a missing constraints file by
//     falling back to the reference defaults. WriteTemplates drops starter
//     files for new data sets.
//
//   - Result exports: ExportCSV writes the allocation, crop and parcel
//     tables next to each other, ExportXLSX packs the same tables plus the
//     KPI sheet into one workbook.
//
// All loaders fail loudly: malformed numbers, unknown soils or seasons and
// bad booleans are reported with file and row context instead of being
// silently coerced.
package dataio
