package agro

import (
	"errors"
	"fmt"
)

// ErrUnknownSoilType is returned when parsing a soil type outside the enumeration.
var ErrUnknownSoilType = errors.New("agro: unknown soil type")

// ErrUnknownSeason is returned when parsing a season outside the enumeration.
var ErrUnknownSeason = errors.New("agro: unknown season")

// Sentinels reported by (*Problem).QuickCheck.
var (
	// ErrNoCrops is returned when the problem defines no crops.
	ErrNoCrops = errors.New("agro: no crops defined")

	// ErrNoParcels is returned when the problem defines no land parcels.
	ErrNoParcels = errors.New("agro: no land parcels defined")

	// ErrNoLand is returned when the summed parcel area is not positive.
	ErrNoLand = errors.New("agro: total land area must be positive")

	// ErrNoCompatiblePair is returned when no crop can grow on any parcel's soil.
	ErrNoCompatiblePair = errors.New("agro: no compatible crop-parcel combinations")
)

// SoilType enumerates the soil classes a parcel can have.
// The string value is the wire format used in JSON and CSV files.
type SoilType string

const (
	SoilClay  SoilType = "clay"
	SoilSandy SoilType = "sandy"
	SoilLoamy SoilType = "loamy"
	SoilSilty SoilType = "silty"
	SoilPeaty SoilType = "peaty"
)

// Valid reports whether s is one of the five known soil classes.
func (s SoilType) Valid() bool {
	switch s {
	case SoilClay, SoilSandy, SoilLoamy, SoilSilty, SoilPeaty:
		return true
	default:
		return false
	}
}

// ParseSoilType converts a raw string into a SoilType,
// returning ErrUnknownSoilType for anything outside the enumeration.
func ParseSoilType(raw string) (SoilType, error) {
	s := SoilType(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSoilType, raw)
	}

	return s, nil
}

// Season enumerates planting seasons.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Valid reports whether s is one of the four known seasons.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return true
	default:
		return false
	}
}

// ParseSeason converts a raw string into a Season,
// returning ErrUnknownSeason for anything outside the enumeration.
func ParseSeason(raw string) (Season, error) {
	s := Season(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeason, raw)
	}

	return s, nil
}

// Limit wraps a float ceiling for optional fields (nil pointer = unlimited).
func Limit(v float64) *float64 { return &v }

// IntLimit wraps an integer ceiling for optional fields (nil pointer = no cap).
func IntLimit(v int) *int { return &v }

// Crop describes one candidate crop and its per-hectare economics.
//
// Fields:
//   - Name               - unique identifier ("Wheat", "Corn", ...).
//   - ProfitPerHectare   - expected profit per hectare planted.
//   - WaterRequirement   - water demand, m^3 per hectare.
//   - LaborHours         - labor demand, hours per hectare.
//   - CostPerHectare     - direct production cost per hectare.
//   - GrowthDurationDays - days from planting to harvest.
//   - PreferredSoilTypes - soils the crop grows on; a parcel outside this
//     set receives no allocation variable at all.
//   - PlantingSeason     - when the crop is planted.
//   - MinArea            - if the crop is planted, at least this many hectares
//     in total (0 = no floor).
//   - MaxArea            - total-area cap across all parcels (nil = no cap).
//   - RotationGroup      - agronomic category tag (1=legumes, 2=cereals,
//     3=vegetables, 4=oilseeds, ...); 0 = unconstrained.
//   - FertilizerNeed     - kg per hectare.
//   - PesticideNeed      - liters per hectare.
type Crop struct {
	Name               string     `json:"name"`
	ProfitPerHectare   float64    `json:"profit_per_hectare"`
	WaterRequirement   float64    `json:"water_requirement"`
	LaborHours         float64    `json:"labor_hours"`
	CostPerHectare     float64    `json:"cost_per_hectare"`
	GrowthDurationDays int        `json:"growth_duration_days"`
	PreferredSoilTypes []SoilType `json:"preferred_soil_types"`
	PlantingSeason     Season     `json:"planting_season"`
	MinArea            float64    `json:"min_area"`
	MaxArea            *float64   `json:"max_area"`
	RotationGroup      int        `json:"rotation_group"`
	FertilizerNeed     float64    `json:"fertilizer_need"`
	PesticideNeed      float64    `json:"pesticide_need"`
}

// Compatible reports whether the crop can grow on the parcel's soil.
// An empty preference list matches nothing.
func (c *Crop) Compatible(p *LandParcel) bool {
	for _, s := range c.PreferredSoilTypes {
		if s == p.SoilType {
			return true
		}
	}

	return false
}

// NewCrop returns a crop with the reference defaults: no area floor or cap,
// no rotation group, zero fertilizer and pesticide need. The trailing soils
// become the preference list; a crop with none matches no parcel.
func NewCrop(name string, profit, water, labor, cost float64, days int, season Season, soils ...SoilType) Crop {
	return Crop{
		Name:               name,
		ProfitPerHectare:   profit,
		WaterRequirement:   water,
		LaborHours:         labor,
		CostPerHectare:     cost,
		GrowthDurationDays: days,
		PreferredSoilTypes: soils,
		PlantingSeason:     season,
	}
}

// LandParcel describes one plot of land available for cultivation.
//
// Fields:
//   - ID                    - unique identifier ("P1", "P2_East", ...).
//   - Area                  - hectares, must be positive.
//   - SoilType              - soil class of the whole parcel.
//   - HasIrrigation         - irrigation infrastructure present.
//   - WaterCapacity         - parcel-local water cap, m^3 (nil = unmetered).
//   - IsDivisible           - whether several crops may share the parcel.
//   - PreviousRotationGroup - rotation group of last season's crop (0 = none).
//   - QualityFactor         - profit multiplier, nominal range [0.5, 1.5].
//   - SlopePercent          - terrain slope in [0, 100].
type LandParcel struct {
	ID                    string   `json:"id"`
	Area                  float64  `json:"area"`
	SoilType              SoilType `json:"soil_type"`
	HasIrrigation         bool     `json:"has_irrigation"`
	WaterCapacity         *float64 `json:"water_capacity"`
	IsDivisible           bool     `json:"is_divisible"`
	PreviousRotationGroup int      `json:"previous_crop_rotation_group"`
	QualityFactor         float64  `json:"quality_factor"`
	SlopePercent          float64  `json:"slope_percentage"`
}

// NewParcel returns a parcel with the reference defaults: irrigation and
// divisibility on, quality factor 1.0, flat terrain, no water cap.
func NewParcel(id string, area float64, soil SoilType) LandParcel {
	return LandParcel{
		ID:            id,
		Area:          area,
		SoilType:      soil,
		HasIrrigation: true,
		IsDivisible:   true,
		QualityFactor: 1.0,
	}
}

// ResourceConstraints bounds the whole plan.
//
// TotalFertilizer and TotalPesticide are optional ceilings: nil means the
// resource is unconstrained and the model builder emits no row for it.
// LaborCostPerHour and WaterCostPerM3 fold labor and water consumption into
// the budget constraint alongside each crop's direct production cost.
// The monthly distribution maps (keyed 1..12) are advisory planning data:
// they are validated for consistency against the seasonal totals but the
// base formulation adds no per-month constraint rows.
type ResourceConstraints struct {
	TotalBudget      float64         `json:"total_budget"`
	TotalWater       float64         `json:"total_water"`
	TotalLaborHours  float64         `json:"total_labor_hours"`
	TotalFertilizer  *float64        `json:"total_fertilizer"`
	TotalPesticide   *float64        `json:"total_pesticide"`
	MinCropDiversity int             `json:"min_crop_diversity"`
	MaxCropDiversity *int            `json:"max_crop_diversity"`
	LaborCostPerHour float64         `json:"labor_cost_per_hour"`
	WaterCostPerM3   float64         `json:"water_cost_per_m3"`
	MonthlyWater     map[int]float64 `json:"monthly_water_distribution,omitempty"`
	MonthlyLabor     map[int]float64 `json:"monthly_labor_distribution,omitempty"`
}

// NewResources returns constraints with the three mandatory budgets set and
// the defaults of the reference data set (diversity floor 1, free labor and
// water, unlimited fertilizer and pesticide).
func NewResources(budget, water, laborHours float64) ResourceConstraints {
	return ResourceConstraints{
		TotalBudget:      budget,
		TotalWater:       water,
		TotalLaborHours:  laborHours,
		MinCropDiversity: 1,
	}
}

// CropCompatibility captures agronomic pairing rules.
//
// RotationRules maps a previous-season rotation group to the list of groups
// allowed to follow it. IncompatiblePairs and BeneficialPairs name crops.
// In the pure linear formulation these rules are advisory (see lpmodel);
// the validator cross-checks them against the crop list.
type CropCompatibility struct {
	IncompatiblePairs [][2]string   `json:"incompatible_pairs"`
	RotationRules     map[int][]int `json:"rotation_rules"`
	BeneficialPairs   [][2]string   `json:"beneficial_pairs"`
	SynergyBonus      float64       `json:"synergy_bonus"`
}

// DefaultCompatibility returns an empty rule set with the standard 10%
// synergy bonus.
func DefaultCompatibility() CropCompatibility {
	return CropCompatibility{SynergyBonus: 1.1}
}

// Objectives holds non-negative weights for the scalarized objective.
// Only ProfitWeight contributes constraint-free linear terms; the other
// weights are carried for reporting and future formulations.
type Objectives struct {
	ProfitWeight          float64 `json:"profit_weight"`
	SustainabilityWeight  float64 `json:"sustainability_weight"`
	DiversityWeight       float64 `json:"diversity_weight"`
	WaterEfficiencyWeight float64 `json:"water_efficiency_weight"`
}

// DefaultObjectives returns pure profit maximization.
func DefaultObjectives() Objectives {
	return Objectives{ProfitWeight: 1.0}
}

// Problem is the complete, immutable description of one planning instance.
type Problem struct {
	Name                  string              `json:"name,omitempty"`
	Crops                 []Crop              `json:"crops"`
	Parcels               []LandParcel        `json:"parcels"`
	Constraints           ResourceConstraints `json:"constraints"`
	Compatibility         CropCompatibility   `json:"compatibility"`
	Objectives            Objectives          `json:"objectives"`
	PlanningHorizonMonths int                 `json:"planning_horizon_months"`
	EnableRotation        bool                `json:"enable_rotation"`
}

// NewProblem assembles a Problem with the standard defaults: empty
// compatibility rules, pure profit objective, 12-month horizon.
func NewProblem(name string, crops []Crop, parcels []LandParcel, rc ResourceConstraints) *Problem {
	return &Problem{
		Name:                  name,
		Crops:                 crops,
		Parcels:               parcels,
		Constraints:           rc,
		Compatibility:         DefaultCompatibility(),
		Objectives:            DefaultObjectives(),
		PlanningHorizonMonths: 12,
	}
}

// TotalArea sums the area of all parcels.
func (p *Problem) TotalArea() float64 {
	var total float64
	for i := range p.Parcels {
		total += p.Parcels[i].Area
	}

	return total
}

// CropByName returns the crop with the given name, if any.
func (p *Problem) CropByName(name string) (*Crop, bool) {
	for i := range p.Crops {
		if p.Crops[i].Name == name {
			return &p.Crops[i], true
		}
	}

	return nil, false
}

// ParcelByID returns the parcel with the given ID, if any.
func (p *Problem) ParcelByID(id string) (*LandParcel, bool) {
	for i := range p.Parcels {
		if p.Parcels[i].ID == id {
			return &p.Parcels[i], true
		}
	}

	return nil, false
}

// QuickCheck is the minimal structural gate run before model construction.
// It returns the first violated sentinel: ErrNoCrops, ErrNoParcels,
// ErrNoLand, or ErrNoCompatiblePair.
func (p *Problem) QuickCheck() error {
	if len(p.Crops) == 0 {
		return ErrNoCrops
	}
	if len(p.Parcels) == 0 {
		return ErrNoParcels
	}
	if p.TotalArea() <= 0 {
		return ErrNoLand
	}

	for i := range p.Crops {
		for j := range p.Parcels {
			if p.Crops[i].Compatible(&p.Parcels[j]) {
				return nil
			}
		}
	}

	return ErrNoCompatiblePair
}
