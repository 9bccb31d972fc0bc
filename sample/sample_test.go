package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/sample"
)

// TestBasic verifies the smallest fixture matches its documented shape and
// passes the full validation catalog without findings.
func TestBasic(t *testing.T) {
	p := sample.Basic()

	require.Len(t, p.Crops, 3)
	require.Len(t, p.Parcels, 2)
	assert.Equal(t, 80.0, p.TotalArea())
	assert.Equal(t, 150000.0, p.Constraints.TotalBudget)
	assert.Equal(t, 30000.0, p.Constraints.TotalWater)
	assert.Equal(t, 3000.0, p.Constraints.TotalLaborHours)
	assert.False(t, p.EnableRotation)

	rep := agro.Validate(p)
	assert.True(t, rep.OK())
	assert.Empty(t, rep.Warnings)
}

// TestIntermediate verifies the rotation fixture: five crops with area
// bounds, three parcels, pairing rules, rotation enabled. It must pass
// validation with no errors.
func TestIntermediate(t *testing.T) {
	p := sample.Intermediate()

	require.Len(t, p.Crops, 5)
	require.Len(t, p.Parcels, 3)
	assert.Equal(t, 100.0, p.TotalArea())
	assert.True(t, p.EnableRotation)
	assert.Equal(t, [][2]string{{"Tomato", "Potato"}}, p.Compatibility.IncompatiblePairs)
	assert.Equal(t, 1.15, p.Compatibility.SynergyBonus)

	for _, c := range p.Crops {
		assert.Positive(t, c.MinArea, "crop %s carries an area floor", c.Name)
		require.NotNil(t, c.MaxArea, "crop %s carries an area cap", c.Name)
	}

	rep := agro.Validate(p)
	assert.True(t, rep.OK(), "errors: %v", rep.Errors)
}

// TestAdvanced verifies the multi-objective fixture. Its monthly
// distributions deliberately undershoot the seasonal totals, so the
// validator reports warnings but no errors.
func TestAdvanced(t *testing.T) {
	p := sample.Advanced()

	require.Len(t, p.Crops, 7)
	require.Len(t, p.Parcels, 4)
	assert.Equal(t, 143.0, p.TotalArea())
	assert.Len(t, p.Constraints.MonthlyWater, 12)
	assert.Len(t, p.Constraints.MonthlyLabor, 12)
	assert.Equal(t, 0.3, p.Objectives.SustainabilityWeight)
	assert.Equal(t, 0.15, p.Objectives.WaterEfficiencyWeight)

	rep := agro.Validate(p)
	assert.True(t, rep.OK(), "errors: %v", rep.Errors)
	assert.NotEmpty(t, rep.Warnings, "monthly sums differ from totals")
}

// TestAll verifies the registry keys match each problem's name.
func TestAll(t *testing.T) {
	all := sample.All()
	require.Len(t, all, 3)

	for name, p := range all {
		require.NotNil(t, p)
		assert.Equal(t, name, p.Name)
	}
}

// TestFreshInstances verifies constructors return independent copies.
func TestFreshInstances(t *testing.T) {
	a := sample.Basic()
	a.Crops[0].ProfitPerHectare = -1

	b := sample.Basic()
	assert.Equal(t, 2500.0, b.Crops[0].ProfitPerHectare, "mutation must not leak between calls")
}
