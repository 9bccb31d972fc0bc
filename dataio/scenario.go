// scenario.go - scenario directories.
//
// A scenario bundles one planning instance as three CSV files in a
// directory: crops.csv, parcels.csv and constraints.csv. The directory
// name doubles as the problem name.

package dataio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cropsolve/cropsolve/agro"
)

// Scenario file names.
const (
	cropsFile       = "crops.csv"
	parcelsFile     = "parcels.csv"
	constraintsFile = "constraints.csv"
)

// ErrIncompleteScenario is returned by LoadScenario when the directory lacks
// one of the three scenario files.
var ErrIncompleteScenario = errors.New("dataio: incomplete scenario")

// scenarioDefaults returns the constraint set used when a constraints file
// is absent or only partially filled: the reference small-farm budget.
func scenarioDefaults() agro.ResourceConstraints {
	rc := agro.NewResources(100000, 20000, 2000)
	rc.LaborCostPerHour = 15.0
	rc.WaterCostPerM3 = 0.5

	return rc
}

// LoadConstraints reads a constraints.csv parameter table. Rows override the
// scenario defaults; unknown parameters are ignored. The second return value
// is the enable_rotation toggle, which lives on the problem rather than the
// constraint set.
func LoadConstraints(path string) (agro.ResourceConstraints, bool, error) {
	rc := scenarioDefaults()
	rotation := false

	t, err := readTable(path)
	if err != nil {
		return rc, false, err
	}
	if err := t.require("parameter", "value"); err != nil {
		return rc, false, err
	}

	for i := range t.rows {
		key := t.cell(i, "parameter")
		raw := t.cell(i, "value")
		if key == "" {
			continue
		}

		if err := setConstraint(&rc, &rotation, key, raw); err != nil {
			return rc, false, t.rowErr(i, key, err)
		}
	}

	return rc, rotation, nil
}

// setConstraint applies one parameter row. Each known parameter is parsed
// with its field's type; anything else is skipped.
func setConstraint(rc *agro.ResourceConstraints, rotation *bool, key, raw string) error {
	setFloat := func(dst *float64) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*dst = v

		return nil
	}

	switch key {
	case "total_budget":
		return setFloat(&rc.TotalBudget)
	case "total_water":
		return setFloat(&rc.TotalWater)
	case "total_labor_hours":
		return setFloat(&rc.TotalLaborHours)
	case "labor_cost_per_hour":
		return setFloat(&rc.LaborCostPerHour)
	case "water_cost_per_m3":
		return setFloat(&rc.WaterCostPerM3)
	case "total_fertilizer":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		rc.TotalFertilizer = &v
	case "total_pesticide":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		rc.TotalPesticide = &v
	case "min_crop_diversity":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		rc.MinCropDiversity = v
	case "max_crop_diversity":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		rc.MaxCropDiversity = &v
	case "enable_rotation":
		v, err := parseBool(raw)
		if err != nil {
			return err
		}
		*rotation = v
	}

	return nil
}

// LoadProblemCSV assembles a problem from individual CSV files. The
// constraints path may be empty or point to a missing file, in which case
// the scenario defaults apply.
func LoadProblemCSV(name, cropsPath, parcelsPath, constraintsPath string) (*agro.Problem, error) {
	crops, err := LoadCrops(cropsPath)
	if err != nil {
		return nil, err
	}

	parcels, err := LoadParcels(parcelsPath)
	if err != nil {
		return nil, err
	}

	rc := scenarioDefaults()
	rotation := false
	if constraintsPath != "" {
		if _, err := os.Stat(constraintsPath); err == nil {
			if rc, rotation, err = LoadConstraints(constraintsPath); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dataio: stat %s: %w", filepath.Base(constraintsPath), err)
		}
	}

	p := agro.NewProblem(name, crops, parcels, rc)
	p.EnableRotation = rotation

	return p, nil
}

// LoadScenario reads the scenario in dir. All three files must be present;
// otherwise ErrIncompleteScenario names the missing ones.
func LoadScenario(dir string) (*agro.Problem, error) {
	var missing []string
	for _, name := range []string{cropsFile, parcelsFile, constraintsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s lacks %v", ErrIncompleteScenario, dir, missing)
	}

	return LoadProblemCSV(
		filepath.Base(dir),
		filepath.Join(dir, cropsFile),
		filepath.Join(dir, parcelsFile),
		filepath.Join(dir, constraintsFile),
	)
}

// SaveScenario writes the problem as a scenario directory, creating it if
// needed.
func SaveScenario(dir string, p *agro.Problem) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataio: create scenario dir: %w", err)
	}

	if err := SaveCrops(filepath.Join(dir, cropsFile), p.Crops); err != nil {
		return err
	}
	if err := SaveParcels(filepath.Join(dir, parcelsFile), p.Parcels); err != nil {
		return err
	}

	rc := &p.Constraints
	records := [][]string{
		{"parameter", "value"},
		{"total_budget", num(rc.TotalBudget)},
		{"total_water", num(rc.TotalWater)},
		{"total_labor_hours", num(rc.TotalLaborHours)},
		{"labor_cost_per_hour", num(rc.LaborCostPerHour)},
		{"water_cost_per_m3", num(rc.WaterCostPerM3)},
		{"min_crop_diversity", strconv.Itoa(rc.MinCropDiversity)},
		{"enable_rotation", boolStr(p.EnableRotation)},
	}
	if rc.TotalFertilizer != nil {
		records = append(records, []string{"total_fertilizer", num(*rc.TotalFertilizer)})
	}
	if rc.TotalPesticide != nil {
		records = append(records, []string{"total_pesticide", num(*rc.TotalPesticide)})
	}
	if rc.MaxCropDiversity != nil {
		records = append(records, []string{"max_crop_diversity", strconv.Itoa(*rc.MaxCropDiversity)})
	}

	return writeCSV(filepath.Join(dir, constraintsFile), records)
}

// Scenarios lists the names of complete scenario directories under root,
// sorted. A missing root yields an empty list rather than an error.
func Scenarios(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("dataio: scan scenarios: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if scenarioComplete(filepath.Join(root, e.Name())) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func scenarioComplete(dir string) bool {
	for _, name := range []string{cropsFile, parcelsFile, constraintsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}

	return true
}
