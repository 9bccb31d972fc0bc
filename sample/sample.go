package sample

import "github.com/cropsolve/cropsolve/agro"

// Basic returns the smallest demonstration problem: three spring/fall
// crops on two parcels with generous budgets. It validates cleanly and
// solves in well under a second.
func Basic() *agro.Problem {
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
			RotationGroup:      2,
			FertilizerNeed:     200,
			PesticideNeed:      8,
		},
		{
			Name:               "Tomato",
			ProfitPerHectare:   5500,
			WaterRequirement:   600,
			LaborHours:         60,
			CostPerHectare:     2000,
			GrowthDurationDays: 75,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSilty},
			PlantingSeason:     agro.SeasonSpring,
			RotationGroup:      3,
			FertilizerNeed:     250,
			PesticideNeed:      12,
		},
	}

	parcels := []agro.LandParcel{
		{
			ID: "P1", Area: 50, SoilType: agro.SoilLoamy,
			HasIrrigation: true, WaterCapacity: agro.Limit(20000),
			IsDivisible: true, QualityFactor: 1.0, SlopePercent: 2,
		},
		{
			ID: "P2", Area: 30, SoilType: agro.SoilSandy,
			HasIrrigation: true, WaterCapacity: agro.Limit(12000),
			IsDivisible: true, QualityFactor: 0.9, SlopePercent: 5,
		},
	}

	rc := agro.ResourceConstraints{
		TotalBudget:      150000,
		TotalWater:       30000,
		TotalLaborHours:  3000,
		TotalFertilizer:  agro.Limit(15000),
		TotalPesticide:   agro.Limit(500),
		MinCropDiversity: 2,
		MaxCropDiversity: agro.IntLimit(3),
		LaborCostPerHour: 15,
		WaterCostPerM3:   0.5,
	}

	return agro.NewProblem("basic", crops, parcels, rc)
}

// Intermediate returns a five-crop, three-parcel problem with per-crop
// area bounds, rotation rules, and both incompatible and beneficial
// pairs. Rotation planning is enabled.
func Intermediate() *agro.Problem {
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
		{
			Name:               "Soybean",
			ProfitPerHectare:   2800,
			WaterRequirement:   350,
			LaborHours:         20,
			CostPerHectare:     700,
			GrowthDurationDays: 100,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSilty},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            10,
			MaxArea:            agro.Limit(35),
			RotationGroup:      1,
			FertilizerNeed:     80,
			PesticideNeed:      4,
		},
		{
			Name:               "Tomato",
			ProfitPerHectare:   5500,
			WaterRequirement:   600,
			LaborHours:         60,
			CostPerHectare:     2000,
			GrowthDurationDays: 75,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSilty},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            5,
			MaxArea:            agro.Limit(25),
			RotationGroup:      3,
			FertilizerNeed:     250,
			PesticideNeed:      12,
		},
		{
			Name:               "Potato",
			ProfitPerHectare:   4200,
			WaterRequirement:   500,
			LaborHours:         45,
			CostPerHectare:     1500,
			GrowthDurationDays: 85,
			PreferredSoilTypes: []agro.SoilType{agro.SoilSandy, agro.SoilLoamy},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            8,
			MaxArea:            agro.Limit(30),
			RotationGroup:      3,
			FertilizerNeed:     180,
			PesticideNeed:      10,
		},
	}

	parcels := []agro.LandParcel{
		{
			ID: "P1", Area: 40, SoilType: agro.SoilLoamy,
			HasIrrigation: true, WaterCapacity: agro.Limit(18000),
			IsDivisible: true, PreviousRotationGroup: 2,
			QualityFactor: 1.1, SlopePercent: 1,
		},
		{
			ID: "P2", Area: 35, SoilType: agro.SoilSandy,
			HasIrrigation: true, WaterCapacity: agro.Limit(14000),
			IsDivisible: true, PreviousRotationGroup: 3,
			QualityFactor: 0.95, SlopePercent: 4,
		},
		{
			ID: "P3", Area: 25, SoilType: agro.SoilSilty,
			HasIrrigation: true, WaterCapacity: agro.Limit(12000),
			IsDivisible: true, PreviousRotationGroup: 1,
			QualityFactor: 1.0, SlopePercent: 2,
		},
	}

	rc := agro.ResourceConstraints{
		TotalBudget:      200000,
		TotalWater:       40000,
		TotalLaborHours:  4000,
		TotalFertilizer:  agro.Limit(18000),
		TotalPesticide:   agro.Limit(600),
		MinCropDiversity: 3,
		MaxCropDiversity: agro.IntLimit(5),
		LaborCostPerHour: 18,
		WaterCostPerM3:   0.6,
	}

	p := agro.NewProblem("intermediate", crops, parcels, rc)
	p.Compatibility = agro.CropCompatibility{
		IncompatiblePairs: [][2]string{{"Tomato", "Potato"}},
		RotationRules: map[int][]int{
			1: {2, 3},
			2: {1, 3},
			3: {1, 2},
		},
		BeneficialPairs: [][2]string{{"Corn", "Soybean"}},
		SynergyBonus:    1.15,
	}
	p.EnableRotation = true

	return p
}

// Advanced returns the largest fixture: seven crops on four parcels with
// monthly water/labor distributions and multi-objective weights.
func Advanced() *agro.Problem {
	crops := []agro.Crop{
		{
			Name:               "Wheat",
			ProfitPerHectare:   2600,
			WaterRequirement:   320,
			LaborHours:         28,
			CostPerHectare:     850,
			GrowthDurationDays: 120,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilClay},
			PlantingSeason:     agro.SeasonFall,
			MinArea:            12,
			MaxArea:            agro.Limit(45),
			RotationGroup:      2,
			FertilizerNeed:     160,
			PesticideNeed:      6,
		},
		{
			Name:               "Barley",
			ProfitPerHectare:   2200,
			WaterRequirement:   280,
			LaborHours:         22,
			CostPerHectare:     700,
			GrowthDurationDays: 110,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSandy},
			PlantingSeason:     agro.SeasonFall,
			MinArea:            10,
			MaxArea:            agro.Limit(35),
			RotationGroup:      2,
			FertilizerNeed:     140,
			PesticideNeed:      5,
		},
		{
			Name:               "Corn",
			ProfitPerHectare:   3400,
			WaterRequirement:   480,
			LaborHours:         38,
			CostPerHectare:     1300,
			GrowthDurationDays: 95,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilClay},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            15,
			MaxArea:            agro.Limit(50),
			RotationGroup:      2,
			FertilizerNeed:     220,
			PesticideNeed:      9,
		},
		{
			Name:               "Soybean",
			ProfitPerHectare:   3000,
			WaterRequirement:   370,
			LaborHours:         24,
			CostPerHectare:     750,
			GrowthDurationDays: 105,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSilty},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            12,
			MaxArea:            agro.Limit(40),
			RotationGroup:      1,
			FertilizerNeed:     70,
			PesticideNeed:      4,
		},
		{
			Name:               "Tomato",
			ProfitPerHectare:   6000,
			WaterRequirement:   650,
			LaborHours:         65,
			CostPerHectare:     2200,
			GrowthDurationDays: 80,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSilty},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            5,
			MaxArea:            agro.Limit(20),
			RotationGroup:      3,
			FertilizerNeed:     280,
			PesticideNeed:      15,
		},
		{
			Name:               "Potato",
			ProfitPerHectare:   4500,
			WaterRequirement:   530,
			LaborHours:         48,
			CostPerHectare:     1600,
			GrowthDurationDays: 90,
			PreferredSoilTypes: []agro.SoilType{agro.SoilSandy, agro.SoilLoamy},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            8,
			MaxArea:            agro.Limit(28),
			RotationGroup:      3,
			FertilizerNeed:     200,
			PesticideNeed:      11,
		},
		{
			Name:               "Sunflower",
			ProfitPerHectare:   2900,
			WaterRequirement:   400,
			LaborHours:         26,
			CostPerHectare:     900,
			GrowthDurationDays: 100,
			PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilSandy, agro.SoilClay},
			PlantingSeason:     agro.SeasonSpring,
			MinArea:            10,
			MaxArea:            agro.Limit(38),
			RotationGroup:      4,
			FertilizerNeed:     130,
			PesticideNeed:      6,
		},
	}

	parcels := []agro.LandParcel{
		{
			ID: "P1_North", Area: 45, SoilType: agro.SoilLoamy,
			HasIrrigation: true, WaterCapacity: agro.Limit(20000),
			IsDivisible: true, PreviousRotationGroup: 2,
			QualityFactor: 1.15, SlopePercent: 1,
		},
		{
			ID: "P2_East", Area: 38, SoilType: agro.SoilClay,
			HasIrrigation: true, WaterCapacity: agro.Limit(16000),
			IsDivisible: true, PreviousRotationGroup: 1,
			QualityFactor: 1.05, SlopePercent: 3,
		},
		{
			ID: "P3_South", Area: 32, SoilType: agro.SoilSandy,
			HasIrrigation: true, WaterCapacity: agro.Limit(14000),
			IsDivisible: true, PreviousRotationGroup: 3,
			QualityFactor: 0.9, SlopePercent: 6,
		},
		{
			ID: "P4_West", Area: 28, SoilType: agro.SoilSilty,
			HasIrrigation: true, WaterCapacity: agro.Limit(13000),
			IsDivisible: true, PreviousRotationGroup: 4,
			QualityFactor: 1.0, SlopePercent: 2,
		},
	}

	rc := agro.ResourceConstraints{
		TotalBudget:      280000,
		TotalWater:       55000,
		TotalLaborHours:  5500,
		TotalFertilizer:  agro.Limit(25000),
		TotalPesticide:   agro.Limit(900),
		MinCropDiversity: 4,
		MaxCropDiversity: agro.IntLimit(6),
		LaborCostPerHour: 20,
		WaterCostPerM3:   0.7,
		MonthlyWater: map[int]float64{
			1: 2000, 2: 2000, 3: 3500, 4: 6000, 5: 7000, 6: 6500,
			7: 5000, 8: 4000, 9: 3000, 10: 2500, 11: 2000, 12: 2000,
		},
		MonthlyLabor: map[int]float64{
			1: 200, 2: 200, 3: 400, 4: 600, 5: 700, 6: 650,
			7: 500, 8: 450, 9: 400, 10: 350, 11: 250, 12: 200,
		},
	}

	p := agro.NewProblem("advanced", crops, parcels, rc)
	p.Compatibility = agro.CropCompatibility{
		IncompatiblePairs: [][2]string{
			{"Tomato", "Potato"},
			{"Wheat", "Barley"},
		},
		RotationRules: map[int][]int{
			1: {2, 3, 4},
			2: {1, 3, 4},
			3: {1, 2, 4},
			4: {1, 2, 3},
		},
		BeneficialPairs: [][2]string{
			{"Corn", "Soybean"},
			{"Wheat", "Soybean"},
			{"Sunflower", "Soybean"},
		},
		SynergyBonus: 1.2,
	}
	p.Objectives = agro.Objectives{
		ProfitWeight:          1.0,
		SustainabilityWeight:  0.3,
		DiversityWeight:       0.2,
		WaterEfficiencyWeight: 0.15,
	}
	p.EnableRotation = true

	return p
}

// All returns the three scenarios keyed by problem name.
func All() map[string]*agro.Problem {
	return map[string]*agro.Problem{
		"basic":        Basic(),
		"intermediate": Intermediate(),
		"advanced":     Advanced(),
	}
}
