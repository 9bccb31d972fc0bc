// validate.go - the full validation catalog for Problem instances.
//
// Validate mirrors the two-tier contract of the solve pipeline:
// Errors make the problem unsolvable and block model construction,
// Warnings flag suspicious data but let the solve proceed. Checks run in a
// fixed order (crops, parcels, resources, compatibility, feasibility,
// settings) so the same Problem always yields the same Report.

package agro

import (
	"fmt"
	"math"
	"sort"
)

// monthlyTol is the absolute tolerance when comparing a monthly
// distribution sum against its seasonal total.
const monthlyTol = 0.01

// Report collects validation findings. Errors block solving; Warnings are
// advisory and never block. Both slices are non-nil and append-ordered.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether the problem may be handed to the model builder.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate runs the complete rule catalog against p and returns the Report.
// It never mutates p and is safe to call repeatedly.
func Validate(p *Problem) *Report {
	r := &Report{Errors: []string{}, Warnings: []string{}}

	validateCrops(p, r)
	validateParcels(p, r)
	validateResources(p, r)
	validateCompatibility(p, r)
	checkFeasibility(p, r)
	checkSettings(p, r)

	return r
}

// validateCrops checks per-crop invariants: unique names, non-negative
// rates, sane growth duration, consistent area bounds.
func validateCrops(p *Problem, r *Report) {
	if len(p.Crops) == 0 {
		r.errorf("No crops defined in the problem")
		return
	}

	seen := make(map[string]struct{}, len(p.Crops))
	for i := range p.Crops {
		c := &p.Crops[i]

		if _, dup := seen[c.Name]; dup {
			r.errorf("Duplicate crop name: %s", c.Name)
		}
		seen[c.Name] = struct{}{}

		if c.ProfitPerHectare < 0 {
			r.errorf("Crop %s has negative profit", c.Name)
		}
		if c.WaterRequirement < 0 {
			r.errorf("Crop %s has negative water requirement", c.Name)
		}
		if c.LaborHours < 0 {
			r.errorf("Crop %s has negative labor hours", c.Name)
		}
		if c.CostPerHectare < 0 {
			r.errorf("Crop %s has negative cost", c.Name)
		}
		if c.MinArea < 0 {
			r.errorf("Crop %s has negative minimum area", c.Name)
		}

		if c.ProfitPerHectare == 0 {
			r.warnf("Crop %s has zero profit - will never be selected", c.Name)
		}
		if c.WaterRequirement == 0 {
			r.warnf("Crop %s has zero water requirement", c.Name)
		}

		if c.GrowthDurationDays <= 0 {
			r.errorf("Crop %s has invalid growth duration", c.Name)
		}
		if c.GrowthDurationDays > 365 {
			r.warnf("Crop %s has growth duration > 1 year", c.Name)
		}

		if c.MaxArea != nil && *c.MaxArea < c.MinArea {
			r.errorf("Crop %s has max_area < min_area", c.Name)
		}

		if len(c.PreferredSoilTypes) == 0 {
			r.warnf("Crop %s has no preferred soil types", c.Name)
		}
	}
}

// validateParcels checks per-parcel invariants and the aggregate land area.
func validateParcels(p *Problem, r *Report) {
	if len(p.Parcels) == 0 {
		r.errorf("No land parcels defined in the problem")
		return
	}

	seen := make(map[string]struct{}, len(p.Parcels))

	var totalArea float64
	for i := range p.Parcels {
		lp := &p.Parcels[i]

		if _, dup := seen[lp.ID]; dup {
			r.errorf("Duplicate parcel ID: %s", lp.ID)
		}
		seen[lp.ID] = struct{}{}

		if lp.Area <= 0 {
			r.errorf("Parcel %s has non-positive area", lp.ID)
		} else {
			totalArea += lp.Area
		}

		if lp.WaterCapacity != nil && *lp.WaterCapacity < 0 {
			r.errorf("Parcel %s has negative water capacity", lp.ID)
		}

		if lp.QualityFactor <= 0 {
			r.errorf("Parcel %s has non-positive quality factor", lp.ID)
		}
		if lp.QualityFactor < 0.5 || lp.QualityFactor > 1.5 {
			r.warnf("Parcel %s has unusual quality factor: %g", lp.ID, lp.QualityFactor)
		}

		if lp.SlopePercent < 0 || lp.SlopePercent > 100 {
			r.errorf("Parcel %s has invalid slope percentage", lp.ID)
		}
		if lp.SlopePercent > 30 {
			r.warnf("Parcel %s has steep slope (%g%%) - may limit crops", lp.ID, lp.SlopePercent)
		}

		if p.EnableRotation && lp.PreviousRotationGroup < 0 {
			r.errorf("Parcel %s has invalid previous rotation group", lp.ID)
		}
	}

	if totalArea == 0 {
		r.errorf("Total land area is zero")
	} else if totalArea < 1 {
		r.warnf("Total land area is very small: %g ha", totalArea)
	}
}

// validateResources checks the global budgets, diversity bounds, unit costs,
// and the monthly distribution maps.
func validateResources(p *Problem, r *Report) {
	rc := &p.Constraints

	if rc.TotalBudget < 0 {
		r.errorf("Total budget is negative")
	}
	if rc.TotalWater < 0 {
		r.errorf("Total water is negative")
	}
	if rc.TotalLaborHours < 0 {
		r.errorf("Total labor hours is negative")
	}

	if rc.TotalBudget == 0 {
		r.warnf("Total budget is zero - may severely limit solutions")
	}
	if rc.TotalWater == 0 {
		r.warnf("Total water is zero - may make problem infeasible")
	}
	if rc.TotalLaborHours == 0 {
		r.warnf("Total labor is zero - may make problem infeasible")
	}

	if rc.MinCropDiversity < 0 {
		r.errorf("Minimum crop diversity cannot be negative")
	}
	if rc.MinCropDiversity > len(p.Crops) {
		r.errorf("Minimum crop diversity (%d) exceeds number of available crops (%d)",
			rc.MinCropDiversity, len(p.Crops))
	}
	if rc.MaxCropDiversity != nil && *rc.MaxCropDiversity < rc.MinCropDiversity {
		r.errorf("Maximum crop diversity (%d) is less than minimum (%d)",
			*rc.MaxCropDiversity, rc.MinCropDiversity)
	}

	if rc.LaborCostPerHour < 0 {
		r.errorf("Labor cost per hour is negative")
	}
	if rc.WaterCostPerM3 < 0 {
		r.errorf("Water cost per m3 is negative")
	}

	if len(rc.MonthlyWater) > 0 {
		var sum float64
		for _, v := range rc.MonthlyWater {
			sum += v
		}
		if math.Abs(sum-rc.TotalWater) > monthlyTol {
			r.warnf("Monthly water distribution sum (%g) differs from total water (%g)",
				sum, rc.TotalWater)
		}
	}

	if len(rc.MonthlyLabor) > 0 {
		var sum float64
		for _, v := range rc.MonthlyLabor {
			sum += v
		}
		if math.Abs(sum-rc.TotalLaborHours) > monthlyTol {
			r.warnf("Monthly labor distribution sum (%g) differs from total labor (%g)",
				sum, rc.TotalLaborHours)
		}
	}
}

// validateCompatibility cross-checks pairing and rotation rules against the
// crop list. Only meaningful when rotation planning is enabled.
func validateCompatibility(p *Problem, r *Report) {
	if !p.EnableRotation {
		return
	}

	names := make(map[string]struct{}, len(p.Crops))
	for i := range p.Crops {
		names[p.Crops[i].Name] = struct{}{}
	}

	for _, pair := range p.Compatibility.IncompatiblePairs {
		for _, name := range pair {
			if _, ok := names[name]; !ok {
				r.warnf("Incompatible pair references unknown crop: %s", name)
			}
		}
	}
	for _, pair := range p.Compatibility.BeneficialPairs {
		for _, name := range pair {
			if _, ok := names[name]; !ok {
				r.warnf("Beneficial pair references unknown crop: %s", name)
			}
		}
	}

	groups := make(map[int]struct{})
	for i := range p.Crops {
		if p.Crops[i].RotationGroup > 0 {
			groups[p.Crops[i].RotationGroup] = struct{}{}
		}
	}

	// Rule keys are sorted so the report order does not depend on map layout.
	fromGroups := make([]int, 0, len(p.Compatibility.RotationRules))
	for from := range p.Compatibility.RotationRules {
		fromGroups = append(fromGroups, from)
	}
	sort.Ints(fromGroups)

	for _, from := range fromGroups {
		if _, ok := groups[from]; !ok {
			r.warnf("Rotation rule references unused rotation group: %d", from)
		}
		for _, to := range p.Compatibility.RotationRules[from] {
			if _, ok := groups[to]; !ok {
				r.warnf("Rotation rule targets unused rotation group: %d", to)
			}
		}
	}
}

// checkFeasibility flags problems that cannot possibly have a feasible
// allocation: minimum areas beyond the land supply, no compatible pair,
// or a diversity floor above the soil-compatible crop count.
func checkFeasibility(p *Problem, r *Report) {
	var totalMin float64
	for i := range p.Crops {
		if p.Crops[i].MinArea > 0 {
			totalMin += p.Crops[i].MinArea
		}
	}

	totalArea := p.TotalArea()
	if totalMin > totalArea {
		r.errorf("Sum of minimum crop areas (%g ha) exceeds total available land (%g ha)",
			totalMin, totalArea)
	}

	compatibleCrops := 0
	for i := range p.Crops {
		for j := range p.Parcels {
			if p.Crops[i].Compatible(&p.Parcels[j]) {
				compatibleCrops++
				break
			}
		}
	}

	if compatibleCrops == 0 && len(p.Crops) > 0 && len(p.Parcels) > 0 {
		r.errorf("No crop is compatible with any parcel's soil type")
	}

	if p.Constraints.MinCropDiversity > 0 && compatibleCrops < p.Constraints.MinCropDiversity {
		r.errorf("Minimum crop diversity (%d) exceeds number of soil-compatible crops (%d)",
			p.Constraints.MinCropDiversity, compatibleCrops)
	}
}

// checkSettings verifies rotation configuration and objective weights.
func checkSettings(p *Problem, r *Report) {
	if p.EnableRotation {
		hasGroups := false
		for i := range p.Crops {
			if p.Crops[i].RotationGroup > 0 {
				hasGroups = true
				break
			}
		}
		if !hasGroups {
			r.warnf("Crop rotation enabled but no crops have rotation groups defined")
		}
	}

	o := p.Objectives
	if o.ProfitWeight < 0 || o.SustainabilityWeight < 0 ||
		o.DiversityWeight < 0 || o.WaterEfficiencyWeight < 0 {
		r.errorf("Objective weights cannot be negative")
	}

	total := o.ProfitWeight + o.SustainabilityWeight + o.DiversityWeight + o.WaterEfficiencyWeight
	if total == 0 {
		r.errorf("All objective weights are zero")
	}
}
