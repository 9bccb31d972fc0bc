package agro_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsolve/cropsolve/agro"
)

// TestParseSoilType_Known verifies that every canonical soil string parses
// to its enum value.
func TestParseSoilType_Known(t *testing.T) {
	for _, raw := range []string{"clay", "sandy", "loamy", "silty", "peaty"} {
		st, err := agro.ParseSoilType(raw)
		require.NoError(t, err, "soil %q must parse", raw)
		assert.Equal(t, agro.SoilType(raw), st)
		assert.True(t, st.Valid())
	}
}

// TestParseSoilType_Unknown verifies the sentinel is wrapped for bad input.
func TestParseSoilType_Unknown(t *testing.T) {
	_, err := agro.ParseSoilType("volcanic")
	require.Error(t, err)
	assert.ErrorIs(t, err, agro.ErrUnknownSoilType)
	assert.False(t, agro.SoilType("volcanic").Valid())
}

// TestParseSeason_Known verifies the four planting seasons parse.
func TestParseSeason_Known(t *testing.T) {
	for _, raw := range []string{"spring", "summer", "fall", "winter"} {
		s, err := agro.ParseSeason(raw)
		require.NoError(t, err, "season %q must parse", raw)
		assert.Equal(t, agro.Season(raw), s)
		assert.True(t, s.Valid())
	}
}

// TestParseSeason_Unknown verifies the sentinel is wrapped for bad input.
func TestParseSeason_Unknown(t *testing.T) {
	_, err := agro.ParseSeason("monsoon")
	require.Error(t, err)
	assert.ErrorIs(t, err, agro.ErrUnknownSeason)
}

// TestCropCompatible verifies soil matching, including the empty preference
// list, which matches no parcel at all.
func TestCropCompatible(t *testing.T) {
	loam := &agro.LandParcel{ID: "P1", Area: 10, SoilType: agro.SoilLoamy, QualityFactor: 1}
	sand := &agro.LandParcel{ID: "P2", Area: 10, SoilType: agro.SoilSandy, QualityFactor: 1}

	wheat := &agro.Crop{Name: "Wheat", PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy, agro.SoilClay}}
	assert.True(t, wheat.Compatible(loam), "loamy parcel is in Wheat's preference list")
	assert.False(t, wheat.Compatible(sand), "sandy parcel is not")

	picky := &agro.Crop{Name: "Picky"}
	assert.False(t, picky.Compatible(loam), "empty preference list matches nothing")
	assert.False(t, picky.Compatible(sand))
}

// TestLimitHelpers verifies the optional-ceiling constructors.
func TestLimitHelpers(t *testing.T) {
	f := agro.Limit(42.5)
	require.NotNil(t, f)
	assert.Equal(t, 42.5, *f)

	n := agro.IntLimit(7)
	require.NotNil(t, n)
	assert.Equal(t, 7, *n)
}

// TestNewCrop verifies the defaulted optional fields: no area floor or cap,
// rotation group 0, zero fertilizer and pesticide need.
func TestNewCrop(t *testing.T) {
	c := agro.NewCrop("Wheat", 1200, 4000, 25, 700, 120, agro.SeasonFall,
		agro.SoilLoamy, agro.SoilClay)

	assert.Equal(t, "Wheat", c.Name)
	assert.Equal(t, 1200.0, c.ProfitPerHectare)
	assert.Equal(t, 4000.0, c.WaterRequirement)
	assert.Equal(t, 25.0, c.LaborHours)
	assert.Equal(t, 700.0, c.CostPerHectare)
	assert.Equal(t, 120, c.GrowthDurationDays)
	assert.Equal(t, []agro.SoilType{agro.SoilLoamy, agro.SoilClay}, c.PreferredSoilTypes)
	assert.Equal(t, agro.SeasonFall, c.PlantingSeason)

	assert.Zero(t, c.MinArea)
	assert.Nil(t, c.MaxArea)
	assert.Zero(t, c.RotationGroup)
	assert.Zero(t, c.FertilizerNeed)
	assert.Zero(t, c.PesticideNeed)
}

// TestNewResources verifies the reference defaults: diversity floor 1,
// zero unit costs, unlimited fertilizer and pesticide.
func TestNewResources(t *testing.T) {
	rc := agro.NewResources(150000, 30000, 3000)

	assert.Equal(t, 150000.0, rc.TotalBudget)
	assert.Equal(t, 30000.0, rc.TotalWater)
	assert.Equal(t, 3000.0, rc.TotalLaborHours)
	assert.Equal(t, 1, rc.MinCropDiversity)
	assert.Nil(t, rc.MaxCropDiversity)
	assert.Nil(t, rc.TotalFertilizer)
	assert.Nil(t, rc.TotalPesticide)
	assert.Zero(t, rc.LaborCostPerHour)
	assert.Zero(t, rc.WaterCostPerM3)
}

// TestNewProblemDefaults verifies the assembled defaults: 12-month horizon,
// pure profit objective, 10% synergy bonus, rotation off.
func TestNewProblemDefaults(t *testing.T) {
	p := agro.NewProblem("demo", nil, nil, agro.NewResources(1, 1, 1))

	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, 12, p.PlanningHorizonMonths)
	assert.Equal(t, 1.0, p.Objectives.ProfitWeight)
	assert.Zero(t, p.Objectives.SustainabilityWeight)
	assert.Equal(t, 1.1, p.Compatibility.SynergyBonus)
	assert.False(t, p.EnableRotation)
}

// TestProblemLookups verifies TotalArea, CropByName and ParcelByID.
func TestProblemLookups(t *testing.T) {
	p := agro.NewProblem("lookups",
		[]agro.Crop{
			{Name: "Wheat", PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy}},
			{Name: "Corn", PreferredSoilTypes: []agro.SoilType{agro.SoilSandy}},
		},
		[]agro.LandParcel{
			{ID: "P1", Area: 50, SoilType: agro.SoilLoamy, QualityFactor: 1},
			{ID: "P2", Area: 30, SoilType: agro.SoilSandy, QualityFactor: 1},
		},
		agro.NewResources(1000, 1000, 1000))

	assert.Equal(t, 80.0, p.TotalArea())

	c, ok := p.CropByName("Corn")
	require.True(t, ok)
	assert.Equal(t, "Corn", c.Name)

	_, ok = p.CropByName("Rice")
	assert.False(t, ok, "unknown crop must miss")

	lp, ok := p.ParcelByID("P2")
	require.True(t, ok)
	assert.Equal(t, 30.0, lp.Area)

	_, ok = p.ParcelByID("P9")
	assert.False(t, ok, "unknown parcel must miss")
}

// TestQuickCheck verifies the structural gate fires its sentinels in order.
func TestQuickCheck(t *testing.T) {
	rc := agro.NewResources(1000, 1000, 1000)

	p := agro.NewProblem("empty", nil, nil, rc)
	assert.True(t, errors.Is(p.QuickCheck(), agro.ErrNoCrops))

	p.Crops = []agro.Crop{{Name: "Wheat", PreferredSoilTypes: []agro.SoilType{agro.SoilLoamy}}}
	assert.True(t, errors.Is(p.QuickCheck(), agro.ErrNoParcels))

	p.Parcels = []agro.LandParcel{{ID: "P1", Area: 0, SoilType: agro.SoilLoamy, QualityFactor: 1}}
	assert.True(t, errors.Is(p.QuickCheck(), agro.ErrNoLand))

	p.Parcels[0].Area = 10
	p.Parcels[0].SoilType = agro.SoilSandy
	assert.True(t, errors.Is(p.QuickCheck(), agro.ErrNoCompatiblePair))

	p.Parcels[0].SoilType = agro.SoilLoamy
	assert.NoError(t, p.QuickCheck(), "compatible pair present")
}
