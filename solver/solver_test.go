package solver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsolve/cropsolve/solver"
)

// TestStatusString verifies the wire names used in logs and metrics.
func TestStatusString(t *testing.T) {
	cases := map[solver.Status]string{
		solver.StatusOptimal:    "optimal",
		solver.StatusTimeLimit:  "time_limit",
		solver.StatusInfeasible: "infeasible",
		solver.StatusUnbounded:  "unbounded",
		solver.StatusError:      "error",
		solver.Status(99):       "error",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

// TestStatusSuccess verifies only optimal and time-limit-with-incumbent
// count as usable outcomes.
func TestStatusSuccess(t *testing.T) {
	assert.True(t, solver.StatusOptimal.Success())
	assert.True(t, solver.StatusTimeLimit.Success())
	assert.False(t, solver.StatusInfeasible.Success())
	assert.False(t, solver.StatusUnbounded.Success())
	assert.False(t, solver.StatusError.Success())
}

// TestDefaultOptions verifies the 300-second default limit.
func TestDefaultOptions(t *testing.T) {
	opts := solver.DefaultOptions()
	assert.Equal(t, solver.DefaultTimeLimit, opts.TimeLimit)
	assert.False(t, opts.Verbose)
}

// TestParseStatus verifies every wire name parses back to its status and
// unknown names are rejected.
func TestParseStatus(t *testing.T) {
	for _, s := range []solver.Status{
		solver.StatusOptimal,
		solver.StatusTimeLimit,
		solver.StatusInfeasible,
		solver.StatusUnbounded,
		solver.StatusError,
	} {
		parsed, err := solver.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := solver.ParseStatus("suboptimal")
	assert.Error(t, err)
}

// TestStatusJSON verifies statuses serialize as their wire names inside
// JSON documents.
func TestStatusJSON(t *testing.T) {
	raw, err := json.Marshal(solver.StatusTimeLimit)
	require.NoError(t, err)
	assert.Equal(t, `"time_limit"`, string(raw))

	var s solver.Status
	require.NoError(t, json.Unmarshal([]byte(`"infeasible"`), &s))
	assert.Equal(t, solver.StatusInfeasible, s)

	assert.Error(t, json.Unmarshal([]byte(`"great"`), &s))
}
