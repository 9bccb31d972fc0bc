package analyze

import (
	"sort"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/solve"
)

// CropSummaries aggregates each planted crop across its parcels, sorted
// by total area descending with ties broken by name. Figures use the
// crop's nominal per-hectare rates.
func CropSummaries(p *agro.Problem, s *solve.Solution) []CropSummary {
	parcelCount := make(map[string]int, len(s.CropAreas))
	for _, a := range s.Allocations {
		parcelCount[a.Crop]++
	}

	out := make([]CropSummary, 0, len(s.CropAreas))
	for name, area := range s.CropAreas {
		c, ok := p.CropByName(name)
		if !ok {
			continue
		}

		out = append(out, CropSummary{
			Name:        name,
			TotalArea:   area,
			ParcelCount: parcelCount[name],
			Profit:      area * c.ProfitPerHectare,
			Water:       area * c.WaterRequirement,
			Labor:       area * c.LaborHours,
			Cost:        area * c.CostPerHectare,
			Season:      c.PlantingSeason,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalArea != out[j].TotalArea {
			return out[i].TotalArea > out[j].TotalArea
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// ParcelSummaries describes every parcel of the problem, planted or not,
// sorted by utilization descending with ties broken by ID. Crop shares
// within a parcel keep the allocation order.
func ParcelSummaries(p *agro.Problem, s *solve.Solution) []ParcelSummary {
	out := make([]ParcelSummary, 0, len(p.Parcels))

	for i := range p.Parcels {
		parcel := &p.Parcels[i]

		var crops []CropShare
		for _, a := range s.Allocations {
			if a.Parcel != parcel.ID {
				continue
			}
			crops = append(crops, CropShare{
				Name:    a.Crop,
				Area:    a.Area,
				Percent: ratio(a.Area, parcel.Area) * 100,
			})
		}

		used := s.ParcelUsed[parcel.ID]
		out = append(out, ParcelSummary{
			ID:                 parcel.ID,
			TotalArea:          parcel.Area,
			UsedArea:           used,
			UnusedArea:         parcel.Area - used,
			UtilizationPercent: ratio(used, parcel.Area) * 100,
			Soil:               parcel.SoilType,
			Irrigated:          parcel.HasIrrigation,
			Crops:              crops,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UtilizationPercent != out[j].UtilizationPercent {
			return out[i].UtilizationPercent > out[j].UtilizationPercent
		}

		return out[i].ID < out[j].ID
	})

	return out
}
