// Package analyze derives planning analytics from a solved allocation:
// KPIs, per-resource utilization, crop and parcel summaries, rule-based
// recommendations, and a plain-text report.
//
// Every function is pure and idempotent: it reads the problem and the
// solution, never mutates either, and returns the same output for the
// same input. Ratios guard their denominators, so a zero-area solution
// produces zeros rather than NaN or Inf.
//
// Summaries are deterministically ordered (crops by area descending,
// parcels by utilization descending, ties broken by name or ID), and the
// recommendation catalog runs in a fixed rule order, so reports diff
// cleanly between runs.
package analyze
