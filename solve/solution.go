package solve

import (
	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/lpmodel"
	"github.com/cropsolve/cropsolve/solver"
)

// Allocation is one planted (crop, parcel) cell of the solution matrix.
type Allocation struct {
	Crop   string  `json:"crop"`
	Parcel string  `json:"parcel"`
	Area   float64 `json:"area_hectares"`
}

// Solution is the extracted outcome of one successful Run.
//
// Totals are recomputed from the problem's per-hectare rates over the
// kept allocations: TotalProfit is quality-adjusted, TotalCost bundles
// direct production cost with priced labor and water exactly like the
// model's budget row. ObjectiveValue is the backend's reported optimum
// and may differ from TotalProfit when the profit weight is not 1.
type Solution struct {
	ProblemName string        `json:"problem_name"`
	Status      solver.Status `json:"status"`

	Allocations []Allocation       `json:"allocations"`
	CropAreas   map[string]float64 `json:"crop_areas"`
	ParcelUsed  map[string]float64 `json:"parcel_usage"`

	TotalProfit     float64 `json:"total_profit"`
	TotalArea       float64 `json:"total_area"`
	TotalWater      float64 `json:"total_water"`
	TotalLabor      float64 `json:"total_labor"`
	TotalCost       float64 `json:"total_cost"`
	TotalFertilizer float64 `json:"total_fertilizer"`
	TotalPesticide  float64 `json:"total_pesticide"`

	ObjectiveValue float64 `json:"objective_value"`
	SolveSeconds   float64 `json:"solve_time_seconds"`
}

// CropsSelected counts the distinct crops with a kept allocation.
func (s *Solution) CropsSelected() int { return len(s.CropAreas) }

// AreaOf returns the total area planted with the named crop.
func (s *Solution) AreaOf(crop string) float64 { return s.CropAreas[crop] }

// extract materializes the solver values into domain terms, dropping
// allocations below minAlloc. Allocation order follows variable order,
// so two extractions of one result are identical.
func extract(p *agro.Problem, m *lpmodel.Model, res *solver.Result, minAlloc float64) *Solution {
	s := &Solution{
		ProblemName:    p.Name,
		Status:         res.Status,
		Allocations:    []Allocation{},
		CropAreas:      make(map[string]float64),
		ParcelUsed:     make(map[string]float64),
		ObjectiveValue: res.Objective,
	}

	rc := &p.Constraints
	for vi := range m.Vars {
		area := res.Values[vi]
		if area < minAlloc {
			continue
		}

		v := &m.Vars[vi]
		c := &p.Crops[v.Crop]
		parcel := &p.Parcels[v.Parcel]

		s.Allocations = append(s.Allocations, Allocation{
			Crop:   c.Name,
			Parcel: parcel.ID,
			Area:   area,
		})
		s.CropAreas[c.Name] += area
		s.ParcelUsed[parcel.ID] += area

		s.TotalArea += area
		s.TotalProfit += c.ProfitPerHectare * parcel.QualityFactor * area
		s.TotalWater += c.WaterRequirement * area
		s.TotalLabor += c.LaborHours * area
		s.TotalCost += (c.CostPerHectare +
			c.LaborHours*rc.LaborCostPerHour +
			c.WaterRequirement*rc.WaterCostPerM3) * area
		s.TotalFertilizer += c.FertilizerNeed * area
		s.TotalPesticide += c.PesticideNeed * area
	}

	return s
}
