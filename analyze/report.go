package analyze

import (
	"fmt"
	"strings"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/solve"
)

// Recommendation thresholds.
const (
	waterAlertPct    = 90
	landAlertPct     = 70
	strongROIPct     = 50
	weakROIPct       = 20
	lowDiversity     = 0.5
	monocultureCrops = 2
)

// Recommendations runs the advice catalog against the solution and
// returns the matching lines. The catalog is evaluated in a fixed order:
// water pressure, idle land, ROI (strong, then weak), named bottlenecks,
// crop concentration. An empty slice means the plan looks balanced.
func Recommendations(p *agro.Problem, s *solve.Solution) []string {
	k := KPIs(p, s)
	var recs []string

	waterPct := ratio(s.TotalWater, p.Constraints.TotalWater) * 100
	if waterPct > waterAlertPct {
		recs = append(recs, fmt.Sprintf(
			"Water is %.1f%% utilized. Consider irrigation upgrades or crops with lower water demand.",
			waterPct))
	}

	if k.LandUtilizationPercent < landAlertPct {
		recs = append(recs, fmt.Sprintf(
			"Only %.1f%% of available land is planted. Idle parcels could host additional soil-compatible crops.",
			k.LandUtilizationPercent))
	}

	switch {
	case k.ROIPercent > strongROIPct:
		recs = append(recs, fmt.Sprintf(
			"Return on investment is strong at %.1f%%.", k.ROIPercent))
	case k.ROIPercent < weakROIPct:
		recs = append(recs, fmt.Sprintf(
			"Return on investment is %.1f%%. Review production costs and crop selection.",
			k.ROIPercent))
	}

	for _, r := range Bottlenecks(p, s) {
		recs = append(recs, fmt.Sprintf(
			"%s is a bottleneck at %.1f%% utilization. Additional %s would unlock further profit.",
			r.Resource, r.UtilizationPercent, r.Resource))
	}

	if k.DiversityIndex < lowDiversity && k.CropsSelected >= monocultureCrops {
		recs = append(recs, fmt.Sprintf(
			"Crop diversity is low (index %.2f). Spreading area across more crops would reduce market and weather risk.",
			k.DiversityIndex))
	}

	return recs
}

// Report renders the solution as a sectioned plain-text document: header,
// KPIs, resource utilization, crop and parcel summaries, recommendations.
// The output carries no timestamps, so identical inputs render identical
// reports.
func Report(p *agro.Problem, s *solve.Solution) string {
	var b strings.Builder
	heavy := strings.Repeat("=", 80)
	light := strings.Repeat("-", 80)

	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b, "AGRICULTURAL PRODUCTION OPTIMIZATION REPORT")
	fmt.Fprintln(&b, heavy)
	fmt.Fprintf(&b, "Problem: %s\n", s.ProblemName)
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	fmt.Fprintf(&b, "Solve Time: %.2f seconds\n", s.SolveSeconds)
	fmt.Fprintln(&b)

	k := KPIs(p, s)
	fmt.Fprintln(&b, light)
	fmt.Fprintln(&b, "KEY PERFORMANCE INDICATORS")
	fmt.Fprintln(&b, light)
	fmt.Fprintf(&b, "Total Profit: %.2f\n", k.TotalProfit)
	fmt.Fprintf(&b, "Profit per Hectare: %.2f\n", k.ProfitPerHectare)
	fmt.Fprintf(&b, "ROI: %.2f%%\n", k.ROIPercent)
	fmt.Fprintf(&b, "Land Utilization: %.2f%%\n", k.LandUtilizationPercent)
	fmt.Fprintf(&b, "Water Efficiency: %.2f profit/m3\n", k.WaterEfficiency)
	fmt.Fprintf(&b, "Labor Efficiency: %.2f profit/hour\n", k.LaborEfficiency)
	fmt.Fprintf(&b, "Number of Crops: %d\n", k.CropsSelected)
	fmt.Fprintf(&b, "Crop Diversity Index: %.3f\n", k.DiversityIndex)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, light)
	fmt.Fprintln(&b, "RESOURCE UTILIZATION")
	fmt.Fprintln(&b, light)
	for _, r := range Resources(p, s) {
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(r.Resource))
		fmt.Fprintf(&b, "  Used: %.2f / %.2f (%.1f%%)\n", r.Used, r.Available, r.UtilizationPercent)
		fmt.Fprintf(&b, "  Remaining: %.2f\n", r.Remaining)
		fmt.Fprintf(&b, "  Efficiency: %.2f\n", r.Efficiency)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, light)
	fmt.Fprintln(&b, "CROP ALLOCATION SUMMARY")
	fmt.Fprintln(&b, light)
	for _, c := range CropSummaries(p, s) {
		fmt.Fprintf(&b, "%s:\n", c.Name)
		fmt.Fprintf(&b, "  Total Area: %.2f hectares\n", c.TotalArea)
		fmt.Fprintf(&b, "  Expected Profit: %.2f\n", c.Profit)
		fmt.Fprintf(&b, "  Water Required: %.2f m3\n", c.Water)
		fmt.Fprintf(&b, "  Labor Required: %.2f hours\n", c.Labor)
		fmt.Fprintf(&b, "  Planting Season: %s\n", c.Season)
		fmt.Fprintf(&b, "  Distributed across %d parcel(s):\n", c.ParcelCount)
		for _, a := range s.Allocations {
			if a.Crop == c.Name {
				fmt.Fprintf(&b, "    - %s: %.2f ha\n", a.Parcel, a.Area)
			}
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, light)
	fmt.Fprintln(&b, "PARCEL UTILIZATION")
	fmt.Fprintln(&b, light)
	for _, ps := range ParcelSummaries(p, s) {
		fmt.Fprintf(&b, "Parcel %s (%s):\n", ps.ID, ps.Soil)
		fmt.Fprintf(&b, "  Total Area: %.2f ha\n", ps.TotalArea)
		fmt.Fprintf(&b, "  Used: %.2f ha (%.1f%%)\n", ps.UsedArea, ps.UtilizationPercent)
		fmt.Fprintf(&b, "  Unused: %.2f ha\n", ps.UnusedArea)
		for _, share := range ps.Crops {
			fmt.Fprintf(&b, "    - %s: %.2f ha (%.1f%%)\n", share.Name, share.Area, share.Percent)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, light)
	fmt.Fprintln(&b, "RECOMMENDATIONS")
	fmt.Fprintln(&b, light)
	recs := Recommendations(p, s)
	if len(recs) == 0 {
		fmt.Fprintln(&b, "None. The plan is balanced.")
	}
	for _, rec := range recs {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	fmt.Fprintln(&b, heavy)

	return b.String()
}
