// templates.go - starter files for new data sets.

package dataio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cropsolve/cropsolve/agro"
)

// Template file names.
const (
	CropsTemplateFile       = "crops_template.csv"
	ParcelsTemplateFile     = "parcels_template.csv"
	ConstraintsTemplateFile = "constraints_template.json"
)

// WriteTemplates drops three starter files into dir: a two-crop crops
// table, a two-parcel parcels table and a constraints document, all small
// enough to edit by hand and valid enough to solve as-is.
func WriteTemplates(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataio: create template dir: %w", err)
	}

	crops := []agro.Crop{
		{
			Name:               "Wheat",
			ProfitPerHectare:   2500,
			WaterRequirement:   300,
			LaborHours:         25,
			CostPerHectare:     800,
			GrowthDurationDays: 120,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilClay},
			PlantingSeason:     agro.SeasonFall,
			MinArea:            10,
			MaxArea:            agro.Limit(40),
			RotationGroup:      2,
			FertilizerNeed:     150,
			PesticideNeed:      5,
		},
		{
			Name:               "Corn",
			ProfitPerHectare:   3200,
			WaterRequirement:   450,
			LaborHours:         35,
			CostPerHectare:     1200,
			GrowthDurationDays: 90,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSandy},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            15,
			MaxArea:            agro.Limit(50),
			RotationGroup:      2,
			FertilizerNeed:     200,
			PesticideNeed:      8,
		},
	}
	if err := SaveCrops(filepath.Join(dir, CropsTemplateFile), crops); err != nil {
		return err
	}

	p1 := agro.NewParcel("P1", 50, agro.SoilLoamy)
	p1.WaterCapacity = agro.Limit(20000)
	p1.SlopePercent = 2

	p2 := agro.NewParcel("P2", 30, agro.SoilSandy)
	p2.WaterCapacity = agro.Limit(12000)
	p2.QualityFactor = 0.9
	p2.SlopePercent = 5

	if err := SaveParcels(filepath.Join(dir, ParcelsTemplateFile), []agro.LandParcel{p1, p2}); err != nil {
		return err
	}

	rc := agro.NewResources(150000, 30000, 3000)
	rc.TotalFertilizer = agro.Limit(15000)
	rc.TotalPesticide = agro.Limit(500)
	rc.MinCropDiversity = 2
	rc.LaborCostPerHour = 15.0
	rc.WaterCostPerM3 = 0.5

	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return fmt.Errorf("dataio: encode constraints template: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConstraintsTemplateFile), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("dataio: write constraints template: %w", err)
	}

	return nil
}
