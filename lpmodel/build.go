package lpmodel

import (
	"fmt"
	"math"

	"github.com/cropsolve/cropsolve/agro"
)

// Build translates p into a maximization LP.
//
// Stages, in order:
//  1. Structural gate - p.QuickCheck; its sentinel (agro.ErrNoCrops,
//     agro.ErrNoParcels, agro.ErrNoLand, agro.ErrNoCompatiblePair) is
//     wrapped and returned before any variable is created.
//  2. Variables - one per soil-compatible (crop, parcel) pair, ordered by
//     (crop index, parcel index), bounds [0, parcel.Area], objective
//     coefficient profit * quality * profit-weight.
//  3. Rows - per-parcel land capacity, then water, labor, budget, the
//     optional fertilizer/pesticide ceilings, then per-crop minimum and
//     maximum total areas.
//  4. Notes - every rule the continuous formulation skips (diversity
//     counts, rotation rules, pairing constraints) is recorded verbatim.
//
// The budget row bundles direct production cost with priced labor and
// water, so the budget, water and labor rows are deliberately coupled: a
// feasible point must satisfy all three at once.
//
// Build never mutates p. Two calls on the same problem yield identical
// models.
//
// Complexity: O(C*P) time and space for C crops and P parcels.
func Build(p *agro.Problem) (*Model, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := p.QuickCheck(); err != nil {
		return nil, fmt.Errorf("lpmodel: build: %w", err)
	}

	m := &Model{
		Maximize: true,
		index:    make(map[pairKey]int, len(p.Crops)*len(p.Parcels)),
	}

	m.addVariables(p)
	m.addLandRows(p)
	m.addResourceRows(p)
	m.addAreaRows(p)
	m.noteSkippedRules(p)

	return m, nil
}

// addVariables creates the hectare-allocation variables. Only pairs whose
// parcel soil appears in the crop's preference list receive a variable;
// exclusion of the rest is structural, not a constraint row.
func (m *Model) addVariables(p *agro.Problem) {
	weight := p.Objectives.ProfitWeight

	for ci := range p.Crops {
		c := &p.Crops[ci]
		for pi := range p.Parcels {
			lp := &p.Parcels[pi]
			if !c.Compatible(lp) {
				continue
			}

			m.index[pairKey{crop: ci, parcel: pi}] = len(m.Vars)
			m.Vars = append(m.Vars, Variable{
				Name:   fmt.Sprintf("allocate_%s_%s", c.Name, lp.ID),
				Crop:   ci,
				Parcel: pi,
				Lower:  0,
				Upper:  lp.Area,
				Cost:   c.ProfitPerHectare * lp.QualityFactor * weight,
			})
		}
	}
}

// addLandRows caps the summed allocation on each parcel by its area.
func (m *Model) addLandRows(p *agro.Problem) {
	for pi := range p.Parcels {
		lp := &p.Parcels[pi]

		terms := make([]Term, 0, len(p.Crops))
		for ci := range p.Crops {
			if v, ok := m.VarFor(ci, pi); ok {
				terms = append(terms, Term{Var: v, Coeff: 1})
			}
		}
		if len(terms) == 0 {
			// No crop grows here; the parcel simply stays idle.
			continue
		}

		m.Cons = append(m.Cons, Constraint{
			Name:  fmt.Sprintf("land_%s", lp.ID),
			Terms: terms,
			Lower: math.Inf(-1),
			Upper: lp.Area,
		})
	}
}

// addResourceRows adds the global budgets: water, labor, money, and the
// fertilizer/pesticide ceilings when finite. Each row sums rate * x over
// every variable.
func (m *Model) addResourceRows(p *agro.Problem) {
	rc := &p.Constraints

	m.addCeilingRow(p, "water_total", rc.TotalWater, func(c *agro.Crop) float64 {
		return c.WaterRequirement
	})
	m.addCeilingRow(p, "labor_total", rc.TotalLaborHours, func(c *agro.Crop) float64 {
		return c.LaborHours
	})
	// Money spent per hectare is the direct cost plus priced labor and water.
	m.addCeilingRow(p, "budget_total", rc.TotalBudget, func(c *agro.Crop) float64 {
		return c.CostPerHectare +
			c.LaborHours*rc.LaborCostPerHour +
			c.WaterRequirement*rc.WaterCostPerM3
	})

	if rc.TotalFertilizer != nil {
		m.addCeilingRow(p, "fertilizer_total", *rc.TotalFertilizer, func(c *agro.Crop) float64 {
			return c.FertilizerNeed
		})
	}
	if rc.TotalPesticide != nil {
		m.addCeilingRow(p, "pesticide_total", *rc.TotalPesticide, func(c *agro.Crop) float64 {
			return c.PesticideNeed
		})
	}
}

// addCeilingRow appends one <= row summing rate(crop) * x over all
// variables. Zero-rate terms are dropped to keep rows sparse.
func (m *Model) addCeilingRow(p *agro.Problem, name string, ceiling float64, rate func(*agro.Crop) float64) {
	terms := make([]Term, 0, len(m.Vars))
	for vi := range m.Vars {
		r := rate(&p.Crops[m.Vars[vi].Crop])
		if r == 0 {
			continue
		}
		terms = append(terms, Term{Var: vi, Coeff: r})
	}

	m.Cons = append(m.Cons, Constraint{
		Name:  name,
		Terms: terms,
		Lower: math.Inf(-1),
		Upper: ceiling,
	})
}

// addAreaRows enforces per-crop total-area floors and caps. For each crop,
// the minimum row (when MinArea > 0) precedes the maximum row (when MaxArea
// is set).
func (m *Model) addAreaRows(p *agro.Problem) {
	for ci := range p.Crops {
		c := &p.Crops[ci]

		terms := make([]Term, 0, len(p.Parcels))
		for pi := range p.Parcels {
			if v, ok := m.VarFor(ci, pi); ok {
				terms = append(terms, Term{Var: v, Coeff: 1})
			}
		}
		if len(terms) == 0 {
			continue
		}

		if c.MinArea > 0 {
			m.Cons = append(m.Cons, Constraint{
				Name:  fmt.Sprintf("min_area_%s", c.Name),
				Terms: terms,
				Lower: c.MinArea,
				Upper: math.Inf(1),
			})
		}
		if c.MaxArea != nil {
			m.Cons = append(m.Cons, Constraint{
				Name:  fmt.Sprintf("max_area_%s", c.Name),
				Terms: terms,
				Lower: math.Inf(-1),
				Upper: *c.MaxArea,
			})
		}
	}
}

// noteSkippedRules records the problem rules that need a discrete planted
// indicator and therefore stay out of the continuous formulation. This is
// the documented extension point for a mixed-integer variant.
func (m *Model) noteSkippedRules(p *agro.Problem) {
	rc := &p.Constraints

	if rc.MinCropDiversity > 1 {
		m.Notes = append(m.Notes, fmt.Sprintf(
			"min_crop_diversity %d needs binary planted indicators; not enforced in the continuous formulation",
			rc.MinCropDiversity))
	}
	if rc.MaxCropDiversity != nil {
		m.Notes = append(m.Notes, fmt.Sprintf(
			"max_crop_diversity %d needs binary planted indicators; not enforced in the continuous formulation",
			*rc.MaxCropDiversity))
	}

	if n := len(p.Compatibility.IncompatiblePairs); n > 0 {
		m.Notes = append(m.Notes, fmt.Sprintf(
			"%d incompatible crop pair(s) not enforced in the continuous formulation", n))
	}
	if p.EnableRotation && len(p.Compatibility.RotationRules) > 0 {
		m.Notes = append(m.Notes, fmt.Sprintf(
			"%d rotation rule(s) not enforced in the continuous formulation",
			len(p.Compatibility.RotationRules)))
	}
	if n := len(p.Compatibility.BeneficialPairs); n > 0 {
		m.Notes = append(m.Notes, fmt.Sprintf(
			"%d beneficial crop pair(s) carry no objective bonus in the continuous formulation", n))
	}

	if p.Objectives.ProfitWeight == 0 {
		m.Notes = append(m.Notes,
			"profit weight is zero: the objective has no linear terms and any feasible point is optimal")
	}
	if p.Objectives.SustainabilityWeight > 0 || p.Objectives.DiversityWeight > 0 ||
		p.Objectives.WaterEfficiencyWeight > 0 {
		m.Notes = append(m.Notes,
			"sustainability/diversity/water-efficiency weights are carried for reporting only")
	}
}
