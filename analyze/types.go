package analyze

import "github.com/cropsolve/cropsolve/agro"

// KPISet is the key-performance view of one solution. JSON names follow
// the exported solution document.
type KPISet struct {
	// TotalProfit is the quality-adjusted profit of the plan.
	TotalProfit float64 `json:"total_profit"`

	// ProfitPerHectare is profit over planted area.
	ProfitPerHectare float64 `json:"profit_per_hectare"`

	// LandUtilizationPercent is planted area over available area, in percent.
	LandUtilizationPercent float64 `json:"land_utilization_pct"`

	// WaterEfficiency is profit per cubic meter of water used.
	WaterEfficiency float64 `json:"water_efficiency"`

	// LaborEfficiency is profit per labor hour used.
	LaborEfficiency float64 `json:"labor_efficiency"`

	// ROIPercent is (profit - cost) / cost, in percent.
	ROIPercent float64 `json:"roi_pct"`

	// CropsSelected counts distinct planted crops.
	CropsSelected int `json:"num_crops"`

	// AvgAreaPerCrop is planted area over the crop count.
	AvgAreaPerCrop float64 `json:"avg_area_per_crop"`

	// DiversityIndex is the Shannon entropy of per-crop area shares,
	// natural log. 0 for a single crop or an empty plan.
	DiversityIndex float64 `json:"crop_diversity_index"`

	// SolveSeconds is the wall-clock solve time carried over from the run.
	SolveSeconds float64 `json:"solve_time_seconds"`
}

// ResourceUsage is the utilization line of one bounded resource.
type ResourceUsage struct {
	// Resource is the row name: water, labor, budget, fertilizer, pesticide.
	Resource string `json:"resource"`

	Used      float64 `json:"used"`
	Available float64 `json:"available"`
	Remaining float64 `json:"remaining"`

	// UtilizationPercent is Used over Available, in percent.
	UtilizationPercent float64 `json:"utilization_pct"`

	// Efficiency is profit per unit used; the budget row carries
	// ROIPercent here instead.
	Efficiency float64 `json:"efficiency"`
}

// CropSummary aggregates one planted crop across all its parcels.
// Monetary figures use the crop's nominal per-hectare rates, so Profit
// here ignores parcel quality factors.
type CropSummary struct {
	Name        string      `json:"name"`
	TotalArea   float64     `json:"total_area"`
	ParcelCount int         `json:"num_parcels"`
	Profit      float64     `json:"profit"`
	Water       float64     `json:"water_needed"`
	Labor       float64     `json:"labor_needed"`
	Cost        float64     `json:"cost"`
	Season      agro.Season `json:"season"`
}

// CropShare is one crop's slice of a parcel.
type CropShare struct {
	Name string `json:"crop"`
	Area float64 `json:"area"`

	// Percent is Area over the parcel's total area, in percent.
	Percent float64 `json:"percentage"`
}

// ParcelSummary describes how one parcel is used by the plan.
type ParcelSummary struct {
	ID                 string        `json:"id"`
	TotalArea          float64       `json:"total_area"`
	UsedArea           float64       `json:"used_area"`
	UnusedArea         float64       `json:"unused_area"`
	UtilizationPercent float64       `json:"utilization"`
	Soil               agro.SoilType `json:"soil_type"`
	Irrigated          bool          `json:"has_irrigation"`
	Crops              []CropShare   `json:"crops"`
}
