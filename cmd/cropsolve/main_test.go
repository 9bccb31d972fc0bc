package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cropsolve/cropsolve/solve"
)

// TestExitCode maps error classes onto the documented codes.
func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitUsage, exitCode(usageError("bad call")))
	assert.Equal(t, exitUsage, exitCode(fmt.Errorf("wrap: %w", usageError("bad call"))))
	assert.Equal(t, exitUsage, exitCode(fmt.Errorf("%w: 2 error(s)", solve.ErrInvalidProblem)))
	assert.Equal(t, exitFailure, exitCode(errors.New("disk on fire")))
}

// TestDispatch_UnknownCommand yields a usage error, not a crash.
func TestDispatch_UnknownCommand(t *testing.T) {
	err := dispatch([]string{"frobnicate"})
	assert.Equal(t, exitUsage, exitCode(err))
}

// TestSlug keeps file stems shell-safe.
func TestSlug(t *testing.T) {
	assert.Equal(t, "unnamed_problem", slug("Unnamed Problem"))
	assert.Equal(t, "basic", slug("basic"))
	assert.Equal(t, "farm_2026_q3", slug("Farm/2026 Q3"))
	assert.Equal(t, "problem", slug("???"))
}

// TestBackendFor accepts the two engines and rejects the rest.
func TestBackendFor(t *testing.T) {
	for _, name := range []string{"", "simplex", "highs"} {
		backend, err := backendFor(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, backend, name)
	}

	_, err := backendFor("cplex")
	assert.Error(t, err)
}
