// Package agro defines the data model for agricultural land-allocation
// planning: crops, land parcels, resource constraints, compatibility rules,
// objective weights, and the Problem aggregate that bundles them.
//
// A Problem is constructed once (from JSON, CSV scenarios, or code),
// validated, and then handed read-only to the model builder and the
// analytics engine. Nothing in this package mutates a Problem after
// construction.
//
// Two levels of validation are provided:
//
//   - (*Problem).QuickCheck - the minimal structural gate (crops present,
//     parcels present, positive land, at least one soil-compatible pair).
//     Returns a sentinel error; used by the solve driver as a fast fail.
//   - Validate - the full rule catalog. Returns a Report with separate
//     Errors (block solving) and Warnings (advisory only), each a list of
//     human-readable messages in a deterministic order.
//
// Optional ceilings (Crop.MaxArea, ResourceConstraints.TotalFertilizer,
// TotalPesticide, MaxCropDiversity, LandParcel.WaterCapacity) are pointers:
// nil means "unlimited"/"absent". JSON round-trips them as null/absent, so
// exported problems never contain floating-point infinities.
package agro
