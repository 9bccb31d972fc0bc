package analyze

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/solve"
)

// Utilization thresholds for Bottlenecks and Underutilized.
const (
	bottleneckPct    = 90
	underutilizedPct = 50
)

// ratio divides num by den, returning 0 for an empty denominator.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// KPIs computes the key-performance view of s.
func KPIs(p *agro.Problem, s *solve.Solution) KPISet {
	crops := s.CropsSelected()

	return KPISet{
		TotalProfit:            s.TotalProfit,
		ProfitPerHectare:       ratio(s.TotalProfit, s.TotalArea),
		LandUtilizationPercent: ratio(s.TotalArea, p.TotalArea()) * 100,
		WaterEfficiency:        ratio(s.TotalProfit, s.TotalWater),
		LaborEfficiency:        ratio(s.TotalProfit, s.TotalLabor),
		ROIPercent:             ratio(s.TotalProfit-s.TotalCost, s.TotalCost) * 100,
		CropsSelected:          crops,
		AvgAreaPerCrop:         ratio(s.TotalArea, float64(crops)),
		DiversityIndex:         diversityIndex(s),
		SolveSeconds:           s.SolveSeconds,
	}
}

// diversityIndex is the Shannon entropy of the per-crop area shares.
// Shares are gathered in crop-name order so repeated calls sum the same
// floating-point sequence.
func diversityIndex(s *solve.Solution) float64 {
	if s.TotalArea == 0 || len(s.CropAreas) == 0 {
		return 0
	}

	names := make([]string, 0, len(s.CropAreas))
	for name := range s.CropAreas {
		names = append(names, name)
	}
	sort.Strings(names)

	shares := make([]float64, len(names))
	for i, name := range names {
		shares[i] = s.CropAreas[name] / s.TotalArea
	}

	return stat.Entropy(shares)
}

// Resources returns the utilization lines in fixed order: water, labor,
// budget, then fertilizer and pesticide when their ceilings are set.
// Efficiency is profit per unit used; the budget line carries ROI percent.
func Resources(p *agro.Problem, s *solve.Solution) []ResourceUsage {
	rc := &p.Constraints

	rows := []ResourceUsage{
		usage("water", s.TotalWater, rc.TotalWater, ratio(s.TotalProfit, s.TotalWater)),
		usage("labor", s.TotalLabor, rc.TotalLaborHours, ratio(s.TotalProfit, s.TotalLabor)),
		usage("budget", s.TotalCost, rc.TotalBudget, ratio(s.TotalProfit-s.TotalCost, s.TotalCost)*100),
	}

	if rc.TotalFertilizer != nil {
		rows = append(rows, usage("fertilizer", s.TotalFertilizer, *rc.TotalFertilizer,
			ratio(s.TotalProfit, s.TotalFertilizer)))
	}
	if rc.TotalPesticide != nil {
		rows = append(rows, usage("pesticide", s.TotalPesticide, *rc.TotalPesticide,
			ratio(s.TotalProfit, s.TotalPesticide)))
	}

	return rows
}

func usage(name string, used, available, efficiency float64) ResourceUsage {
	return ResourceUsage{
		Resource:           name,
		Used:               used,
		Available:          available,
		Remaining:          available - used,
		UtilizationPercent: ratio(used, available) * 100,
		Efficiency:         efficiency,
	}
}

// Bottlenecks returns the resources above 90% utilization, most loaded
// first. Ties keep the fixed resource order.
func Bottlenecks(p *agro.Problem, s *solve.Solution) []ResourceUsage {
	var out []ResourceUsage
	for _, r := range Resources(p, s) {
		if r.UtilizationPercent > bottleneckPct {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UtilizationPercent > out[j].UtilizationPercent
	})

	return out
}

// Underutilized returns the resources below 50% utilization, least loaded
// first. Ties keep the fixed resource order.
func Underutilized(p *agro.Problem, s *solve.Solution) []ResourceUsage {
	var out []ResourceUsage
	for _, r := range Resources(p, s) {
		if r.UtilizationPercent < underutilizedPct {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UtilizationPercent < out[j].UtilizationPercent
	})

	return out
}
