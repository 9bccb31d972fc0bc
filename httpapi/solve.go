package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/runner"
	"github.com/cropsolve/cropsolve/solve"
	"github.com/cropsolve/cropsolve/solver"
	"github.com/cropsolve/cropsolve/solver/highs"
	"github.com/cropsolve/cropsolve/solver/simplex"
)

// handleSolve accepts a problem document and schedules an asynchronous
// solve. Answers 202 with the task id, 400 for undecodable or invalid
// problems, 409 while the same problem name is already in flight.
func (s *Server) handleSolve(c *gin.Context) {
	var p agro.Problem
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("parse problem: %v", err)})

		return
	}
	if p.Name == "" {
		p.Name = dataio.UnnamedProblem
	}

	s.submit(c, &p)
}

// handleValidate runs the full validation catalog and reports findings
// without solving.
func (s *Server) handleValidate(c *gin.Context) {
	var p agro.Problem
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("parse problem: %v", err)})

		return
	}

	report := agro.Validate(&p)
	c.JSON(http.StatusOK, gin.H{
		"valid":    report.OK(),
		"errors":   report.Errors,
		"warnings": report.Warnings,
	})
}

// submit gates, schedules and answers for one problem. Shared by the
// solve and sample-solve endpoints.
func (s *Server) submit(c *gin.Context, p *agro.Problem) {
	if err := p.QuickCheck(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	if report := agro.Validate(p); !report.OK() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "problem failed validation",
			"errors":   report.Errors,
			"warnings": report.Warnings,
		})

		return
	}

	opts, err := s.solveOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	// The task outlives the request, so it must not inherit its context.
	task, err := s.pool.Submit(context.Background(), p, opts)
	if errors.Is(err, runner.ErrBusy) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusAccepted, gin.H{"task_id": task.ID.String()})
}

// solveOptions reads the backend and time_limit_seconds query parameters
// and applies the configured cap.
func (s *Server) solveOptions(c *gin.Context) (solve.Options, error) {
	var opts solve.Options

	if raw := c.Query("time_limit_seconds"); raw != "" {
		secs, err := strconv.ParseFloat(raw, 64)
		if err != nil || secs <= 0 {
			return opts, fmt.Errorf("httpapi: bad time_limit_seconds %q", raw)
		}
		opts.TimeLimit = time.Duration(secs * float64(time.Second))
	}
	if limit := s.cfg.TimeLimitCap; limit > 0 && (opts.TimeLimit <= 0 || opts.TimeLimit > limit) {
		opts.TimeLimit = limit
	}

	backend, err := backendFor(c.Query("backend"))
	if err != nil {
		return opts, err
	}
	opts.Backend = backend

	return opts, nil
}

// backendFor maps the query name onto an engine. Empty picks the solve
// default.
func backendFor(name string) (solver.Solver, error) {
	switch name {
	case "":
		return nil, nil
	case "simplex":
		return simplex.New(), nil
	case "highs":
		return highs.New(), nil
	default:
		return nil, fmt.Errorf("httpapi: unknown backend %q", name)
	}
}
