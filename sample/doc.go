// Package sample provides three ready-made planning problems used by the
// demo command, the HTTP service and the test suites.
//
// The fixtures grow in difficulty:
//
//   - Basic        - 3 crops, 2 parcels, plain resource budgets.
//   - Intermediate - 5 crops, 3 parcels, per-crop area bounds, rotation
//     rules and pairing constraints.
//   - Advanced     - 7 crops, 4 parcels, monthly resource distributions
//     and multi-objective weights.
//
// Each constructor returns a fresh Problem; mutating the result never
// affects later calls.
package sample
