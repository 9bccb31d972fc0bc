package analyze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsolve/cropsolve/analyze"
	"github.com/cropsolve/cropsolve/sample"
	"github.com/cropsolve/cropsolve/solve"
)

// balancedSolution triggers no recommendation rule: 75% land, 50% water,
// 30% ROI, even two-crop split.
func balancedSolution() *solve.Solution {
	return &solve.Solution{
		ProblemName: "basic",
		Allocations: []solve.Allocation{
			{Crop: "Wheat", Parcel: "P1", Area: 30},
			{Crop: "Corn", Parcel: "P2", Area: 30},
		},
		CropAreas:   map[string]float64{"Wheat": 30, "Corn": 30},
		ParcelUsed:  map[string]float64{"P1": 30, "P2": 30},
		TotalProfit: 65000,
		TotalArea:   60,
		TotalWater:  15000,
		TotalLabor:  1500,
		TotalCost:   50000,
	}
}

// TestRecommendations_Balanced verifies a healthy plan yields no advice.
func TestRecommendations_Balanced(t *testing.T) {
	recs := analyze.Recommendations(sample.Basic(), balancedSolution())
	assert.Empty(t, recs)
}

// TestRecommendations_WaterPressure verifies heavy water use produces the
// irrigation rule first and the bottleneck rule after.
func TestRecommendations_WaterPressure(t *testing.T) {
	s := balancedSolution()
	s.TotalWater = 28500 // 95%

	recs := analyze.Recommendations(sample.Basic(), s)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Water is 95.0% utilized")

	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "water is a bottleneck at 95.0% utilization")
}

// TestRecommendations_IdleLand verifies low land utilization produces the
// expansion rule.
func TestRecommendations_IdleLand(t *testing.T) {
	s := balancedSolution()
	s.TotalArea = 40 // 50% of the 80 ha fixture

	recs := analyze.Recommendations(sample.Basic(), s)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Only 50.0% of available land is planted")
}

// TestRecommendations_ROI verifies the strong and weak return rules are
// mutually exclusive.
func TestRecommendations_ROI(t *testing.T) {
	strong := balancedSolution()
	strong.TotalProfit = 90000 // ROI 80%

	recs := analyze.Recommendations(sample.Basic(), strong)
	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "strong at 80.0%")
	assert.NotContains(t, joined, "Review production costs")

	weak := balancedSolution()
	weak.TotalProfit = 55000 // ROI 10%

	recs = analyze.Recommendations(sample.Basic(), weak)
	joined = strings.Join(recs, "\n")
	assert.Contains(t, joined, "Return on investment is 10.0%")
	assert.NotContains(t, joined, "strong")
}

// TestRecommendations_Monoculture verifies a concentrated two-crop plan
// trips the diversity rule.
func TestRecommendations_Monoculture(t *testing.T) {
	s := balancedSolution()
	// 58 + 2 of 60 ha: entropy ~0.145, well under the 0.5 threshold.
	s.CropAreas = map[string]float64{"Wheat": 58, "Corn": 2}

	recs := analyze.Recommendations(sample.Basic(), s)
	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "Crop diversity is low")
}

// TestRecommendations_SingleCropNoMonocultureRule verifies the diversity
// rule needs at least two crops: a one-crop plan is concentration by
// construction, not by mistake.
func TestRecommendations_SingleCropNoMonocultureRule(t *testing.T) {
	s := balancedSolution()
	s.CropAreas = map[string]float64{"Wheat": 60}

	recs := analyze.Recommendations(sample.Basic(), s)
	assert.NotContains(t, strings.Join(recs, "\n"), "Crop diversity is low")
}

// TestReport_Sections verifies the report carries every section and the
// placeholder when no advice applies.
func TestReport_Sections(t *testing.T) {
	p := sample.Basic()
	s := balancedSolution()

	text := analyze.Report(p, s)

	for _, want := range []string{
		"AGRICULTURAL PRODUCTION OPTIMIZATION REPORT",
		"Problem: basic",
		"Status: optimal",
		"KEY PERFORMANCE INDICATORS",
		"RESOURCE UTILIZATION",
		"WATER:",
		"BUDGET:",
		"CROP ALLOCATION SUMMARY",
		"Wheat:",
		"PARCEL UTILIZATION",
		"Parcel P1 (loamy):",
		"RECOMMENDATIONS",
		"None. The plan is balanced.",
	} {
		assert.Contains(t, text, want)
	}
}

// TestReport_ZeroSolution verifies the empty plan renders without NaN or
// panics.
func TestReport_ZeroSolution(t *testing.T) {
	p := sample.Basic()
	s := &solve.Solution{
		ProblemName: "basic",
		Allocations: []solve.Allocation{},
		CropAreas:   map[string]float64{},
		ParcelUsed:  map[string]float64{},
	}

	text := analyze.Report(p, s)
	assert.NotContains(t, text, "NaN")
	assert.NotContains(t, text, "Inf")
	assert.Contains(t, text, "Used: 0.00")
}
