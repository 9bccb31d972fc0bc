// json.go - wire-format defaulting.
//
// The JSON format is permissive about optional fields: absent keys take
// the documented defaults rather than Go zero values (irrigation and
// divisibility are on unless switched off, quality factor is 1.0,
// diversity floor 1, synergy bonus 1.1, planning horizon 12 months,
// profit weight 1.0). Enumerations are validated while decoding, so a
// problem that unmarshals cleanly never carries an unknown soil or
// season.

package agro

import (
	"encoding/json"
	"fmt"
)

// UnmarshalText validates the soil class while decoding.
func (s *SoilType) UnmarshalText(text []byte) error {
	parsed, err := ParseSoilType(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// UnmarshalText validates the season while decoding.
func (s *Season) UnmarshalText(text []byte) error {
	parsed, err := ParseSeason(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// UnmarshalJSON decodes a crop and rejects a missing or unknown planting
// season. All other optional fields keep their zero defaults.
func (c *Crop) UnmarshalJSON(data []byte) error {
	type alias Crop
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}

	if !c.PlantingSeason.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSeason, string(c.PlantingSeason))
	}

	return nil
}

// UnmarshalJSON decodes a parcel with the wire defaults: irrigation and
// divisibility on, quality factor 1.0. The soil type is mandatory.
func (lp *LandParcel) UnmarshalJSON(data []byte) error {
	type alias LandParcel
	aux := struct {
		HasIrrigation *bool    `json:"has_irrigation"`
		IsDivisible   *bool    `json:"is_divisible"`
		QualityFactor *float64 `json:"quality_factor"`
		*alias
	}{alias: (*alias)(lp)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	lp.HasIrrigation = aux.HasIrrigation == nil || *aux.HasIrrigation
	lp.IsDivisible = aux.IsDivisible == nil || *aux.IsDivisible

	lp.QualityFactor = 1.0
	if aux.QualityFactor != nil {
		lp.QualityFactor = *aux.QualityFactor
	}

	if !lp.SoilType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSoilType, string(lp.SoilType))
	}

	return nil
}

// UnmarshalJSON decodes resource constraints with a diversity floor of 1
// when the key is absent.
func (rc *ResourceConstraints) UnmarshalJSON(data []byte) error {
	type alias ResourceConstraints
	aux := struct {
		MinCropDiversity *int `json:"min_crop_diversity"`
		*alias
	}{alias: (*alias)(rc)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	rc.MinCropDiversity = 1
	if aux.MinCropDiversity != nil {
		rc.MinCropDiversity = *aux.MinCropDiversity
	}

	return nil
}

// UnmarshalJSON decodes compatibility rules with the standard 10% synergy
// bonus when the key is absent.
func (cc *CropCompatibility) UnmarshalJSON(data []byte) error {
	type alias CropCompatibility
	aux := struct {
		SynergyBonus *float64 `json:"synergy_bonus"`
		*alias
	}{alias: (*alias)(cc)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	cc.SynergyBonus = DefaultCompatibility().SynergyBonus
	if aux.SynergyBonus != nil {
		cc.SynergyBonus = *aux.SynergyBonus
	}

	return nil
}

// UnmarshalJSON decodes objective weights with profit defaulting to 1.0
// when the key is absent, so a partially specified block still optimizes
// for profit.
func (o *Objectives) UnmarshalJSON(data []byte) error {
	type alias Objectives
	aux := struct {
		ProfitWeight *float64 `json:"profit_weight"`
		*alias
	}{alias: (*alias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	o.ProfitWeight = 1.0
	if aux.ProfitWeight != nil {
		o.ProfitWeight = *aux.ProfitWeight
	}

	return nil
}

// UnmarshalJSON decodes a problem with document-level defaults: a
// 12-month horizon, empty compatibility rules with the standard synergy
// bonus, and pure profit objectives when the blocks are absent.
func (p *Problem) UnmarshalJSON(data []byte) error {
	type alias Problem
	aux := struct {
		PlanningHorizonMonths *int               `json:"planning_horizon_months"`
		Compatibility         *CropCompatibility `json:"compatibility"`
		Objectives            *Objectives        `json:"objectives"`
		*alias
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.PlanningHorizonMonths = 12
	if aux.PlanningHorizonMonths != nil {
		p.PlanningHorizonMonths = *aux.PlanningHorizonMonths
	}

	p.Compatibility = DefaultCompatibility()
	if aux.Compatibility != nil {
		p.Compatibility = *aux.Compatibility
	}

	p.Objectives = DefaultObjectives()
	if aux.Objectives != nil {
		p.Objectives = *aux.Objectives
	}

	return nil
}
