// json.go - JSON documents for problems and solutions.

package dataio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/analyze"
	"github.com/cropsolve/cropsolve/solve"
)

// UnnamedProblem is the fallback when a problem document has no name.
const UnnamedProblem = "Unnamed Problem"

// LoadProblemJSON reads a complete problem document. Absent optional fields
// take the wire defaults (see agro), so a minimal document loads into a
// fully populated Problem.
func LoadProblemJSON(path string) (*agro.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: read problem: %w", err)
	}

	var p agro.Problem
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("dataio: parse problem: %w", err)
	}

	if p.Name == "" {
		p.Name = UnnamedProblem
	}

	return &p, nil
}

// SaveProblemJSON writes the problem as an indented JSON document.
func SaveProblemJSON(path string, p *agro.Problem) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("dataio: encode problem: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("dataio: write problem: %w", err)
	}

	return nil
}

// SolutionExport bundles a solution with the derived analytics so one
// document carries everything a downstream consumer needs.
type SolutionExport struct {
	Solution        *solve.Solution         `json:"solution"`
	KPIs            analyze.KPISet          `json:"kpis"`
	Resources       []analyze.ResourceUsage `json:"resource_analysis"`
	Crops           []analyze.CropSummary   `json:"crop_summary"`
	Parcels         []analyze.ParcelSummary `json:"parcel_summary"`
	Recommendations []string                `json:"recommendations"`
}

// NewSolutionExport assembles the export bundle for a solved problem.
func NewSolutionExport(p *agro.Problem, s *solve.Solution) *SolutionExport {
	recs := analyze.Recommendations(p, s)
	if recs == nil {
		recs = []string{}
	}

	return &SolutionExport{
		Solution:        s,
		KPIs:            analyze.KPIs(p, s),
		Resources:       analyze.Resources(p, s),
		Crops:           analyze.CropSummaries(p, s),
		Parcels:         analyze.ParcelSummaries(p, s),
		Recommendations: recs,
	}
}

// SaveSolutionJSON writes the solution and its analytics as one indented
// JSON document.
func SaveSolutionJSON(path string, p *agro.Problem, s *solve.Solution) error {
	data, err := json.MarshalIndent(NewSolutionExport(p, s), "", "  ")
	if err != nil {
		return fmt.Errorf("dataio: encode solution: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("dataio: write solution: %w", err)
	}

	return nil
}
