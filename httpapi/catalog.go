package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/sample"
)

// handleScenarios lists the complete scenario folders under an
// allowlisted root.
func (s *Server) handleScenarios(c *gin.Context) {
	root, err := s.scenarioRoot(c.Query("root"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

		return
	}

	names, err := dataio.Scenarios(root)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"root": root, "scenarios": names})
}

// scenarioRoot maps the optional query root onto the configured
// allowlist. An empty query selects the first configured root.
func (s *Server) scenarioRoot(q string) (string, error) {
	if len(s.cfg.ScenarioRoots) == 0 {
		return "", errors.New("httpapi: no scenario roots configured")
	}
	if q == "" {
		return s.cfg.ScenarioRoots[0], nil
	}

	clean := filepath.Clean(q)
	for _, root := range s.cfg.ScenarioRoots {
		if filepath.Clean(root) == clean {
			return clean, nil
		}
	}

	return "", fmt.Errorf("httpapi: scenario root %q not allowed", q)
}

// handleSamples lists the built-in problems with their headline sizes.
func (s *Server) handleSamples(c *gin.Context) {
	all := sample.All()

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]gin.H, 0, len(names))
	for _, name := range names {
		p := all[name]
		out = append(out, gin.H{
			"name":    name,
			"crops":   len(p.Crops),
			"parcels": len(p.Parcels),
		})
	}

	c.JSON(http.StatusOK, gin.H{"samples": out})
}

// handleSampleSolve schedules a solve of one built-in problem, honoring
// the same query parameters as the solve endpoint.
func (s *Server) handleSampleSolve(c *gin.Context) {
	name := c.Param("name")
	p, ok := sample.All()[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown sample %q", name)})

		return
	}

	s.submit(c, p)
}
