package dataio_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/sample"
)

// TestProblemJSON_FileRoundTrip verifies save-then-load over a problem
// document, including compatibility rules that only the JSON format
// carries.
func TestProblemJSON_FileRoundTrip(t *testing.T) {
	orig := sample.Intermediate()
	path := filepath.Join(t.TempDir(), "problem.json")

	require.NoError(t, dataio.SaveProblemJSON(path, orig))
	loaded, err := dataio.LoadProblemJSON(path)
	require.NoError(t, err)

	assert.Equal(t, orig, loaded)
}

// TestLoadProblemJSON_UnnamedFallback verifies the fallback name for
// documents without one.
func TestLoadProblemJSON_UnnamedFallback(t *testing.T) {
	path := writeFile(t, t.TempDir(), "problem.json", `{
		"crops": [],
		"parcels": [],
		"constraints": {"total_budget": 1, "total_water": 1, "total_labor_hours": 1}
	}`)

	p, err := dataio.LoadProblemJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "Unnamed Problem", p.Name)
}

// TestLoadProblemJSON_BadDocument verifies parse failures are wrapped with
// context.
func TestLoadProblemJSON_BadDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "problem.json", `{"crops": [`)

	_, err := dataio.LoadProblemJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataio: parse problem")
}

// TestSaveSolutionJSON_Bundle verifies the exported document carries the
// solution plus all analytics sections.
func TestSaveSolutionJSON_Bundle(t *testing.T) {
	p, s := exportFixture(t)
	path := filepath.Join(t.TempDir(), "solution.json")

	require.NoError(t, dataio.SaveSolutionJSON(path, p, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{
		"solution", "kpis", "resource_analysis",
		"crop_summary", "parcel_summary", "recommendations",
	} {
		assert.Contains(t, doc, key)
	}

	var export dataio.SolutionExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.InDelta(t, 39400, export.KPIs.TotalProfit, 1e-9)
	assert.Equal(t, 2, export.KPIs.CropsSelected)
	require.NotNil(t, export.Solution)
	assert.Len(t, export.Solution.Allocations, 2)
	assert.NotNil(t, export.Recommendations, "recommendations list is never null")
}
