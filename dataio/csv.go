// csv.go - crop and parcel tables.
//
// Both tables are header-addressed: columns may appear in any order and
// optional columns may be missing entirely. Absent or empty optional cells
// take the same defaults as the JSON format.

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cropsolve/cropsolve/agro"
)

// ErrMissingColumn is returned when a table lacks a required header column.
var ErrMissingColumn = errors.New("dataio: missing column")

// cropColumns is the canonical crops.csv column order used when writing.
var cropColumns = []string{
	"name", "profit_per_hectare", "water_requirement", "labor_hours",
	"cost_per_hectare", "growth_duration_days", "preferred_soil_types",
	"planting_season", "min_area", "max_area", "rotation_group",
	"fertilizer_need", "pesticide_need",
}

// parcelColumns is the canonical parcels.csv column order used when writing.
var parcelColumns = []string{
	"id", "area", "soil_type", "has_irrigation", "water_capacity",
	"is_divisible", "previous_crop_rotation_group", "quality_factor",
	"slope_percentage",
}

// table is one parsed CSV file with header-indexed cell access.
type table struct {
	file  string
	index map[string]int
	rows  [][]string
}

// readTable parses the file at path into a header-indexed table. Short rows
// are tolerated; missing cells read as empty.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataio: parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataio: %s: empty file", filepath.Base(path))
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	return &table{file: filepath.Base(path), index: index, rows: records[1:]}, nil
}

// require verifies that every named column is present.
func (t *table) require(cols ...string) error {
	for _, col := range cols {
		if _, ok := t.index[col]; !ok {
			return fmt.Errorf("%w: %s: %q", ErrMissingColumn, t.file, col)
		}
	}

	return nil
}

// cell returns the trimmed value of one cell; absent columns and short rows
// read as the empty string.
func (t *table) cell(row int, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(t.rows[row]) {
		return ""
	}

	return strings.TrimSpace(t.rows[row][i])
}

// rowErr decorates a cell-level failure with file, data row and column.
func (t *table) rowErr(row int, col string, err error) error {
	return fmt.Errorf("dataio: %s row %d: %s: %w", t.file, row+2, col, err)
}

func (t *table) float(row int, col string) (float64, error) {
	raw := t.cell(row, col)
	if raw == "" {
		return 0, t.rowErr(row, col, errors.New("empty value"))
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, t.rowErr(row, col, err)
	}

	return v, nil
}

func (t *table) floatOr(row int, col string, def float64) (float64, error) {
	if t.cell(row, col) == "" {
		return def, nil
	}

	return t.float(row, col)
}

// optFloat returns nil for an absent or empty cell.
func (t *table) optFloat(row int, col string) (*float64, error) {
	if t.cell(row, col) == "" {
		return nil, nil
	}

	v, err := t.float(row, col)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (t *table) intOr(row int, col string, def int) (int, error) {
	raw := t.cell(row, col)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, t.rowErr(row, col, err)
	}

	return v, nil
}

func (t *table) boolOr(row int, col string, def bool) (bool, error) {
	raw := t.cell(row, col)
	if raw == "" {
		return def, nil
	}

	v, err := parseBool(raw)
	if err != nil {
		return false, t.rowErr(row, col, err)
	}

	return v, nil
}

// parseBool accepts exactly "true" and "false", case-insensitively.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, fmt.Errorf("invalid boolean %q", raw)
}

// LoadCrops reads a crops.csv table.
func LoadCrops(path string) ([]agro.Crop, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("name", "profit_per_hectare", "water_requirement",
		"labor_hours", "cost_per_hectare", "growth_duration_days",
		"preferred_soil_types", "planting_season"); err != nil {
		return nil, err
	}

	crops := make([]agro.Crop, 0, len(t.rows))
	for i := range t.rows {
		c, err := t.crop(i)
		if err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}

	return crops, nil
}

func (t *table) crop(row int) (agro.Crop, error) {
	var c agro.Crop
	var err error

	c.Name = t.cell(row, "name")
	if c.Name == "" {
		return c, t.rowErr(row, "name", errors.New("empty value"))
	}

	if c.ProfitPerHectare, err = t.float(row, "profit_per_hectare"); err != nil {
		return c, err
	}
	if c.WaterRequirement, err = t.float(row, "water_requirement"); err != nil {
		return c, err
	}
	if c.LaborHours, err = t.float(row, "labor_hours"); err != nil {
		return c, err
	}
	if c.CostPerHectare, err = t.float(row, "cost_per_hectare"); err != nil {
		return c, err
	}
	if c.GrowthDurationDays, err = t.intOr(row, "growth_duration_days", 0); err != nil {
		return c, err
	}

	for _, raw := range strings.Split(t.cell(row, "preferred_soil_types"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		soil, err := agro.ParseSoilType(raw)
		if err != nil {
			return c, t.rowErr(row, "preferred_soil_types", err)
		}
		c.PreferredSoilTypes = append(c.PreferredSoilTypes, soil)
	}

	if c.PlantingSeason, err = agro.ParseSeason(t.cell(row, "planting_season")); err != nil {
		return c, t.rowErr(row, "planting_season", err)
	}

	if c.MinArea, err = t.floatOr(row, "min_area", 0); err != nil {
		return c, err
	}
	if c.MaxArea, err = t.optFloat(row, "max_area"); err != nil {
		return c, err
	}
	if c.RotationGroup, err = t.intOr(row, "rotation_group", 0); err != nil {
		return c, err
	}
	if c.FertilizerNeed, err = t.floatOr(row, "fertilizer_need", 0); err != nil {
		return c, err
	}
	if c.PesticideNeed, err = t.floatOr(row, "pesticide_need", 0); err != nil {
		return c, err
	}

	return c, nil
}

// LoadParcels reads a parcels.csv table.
func LoadParcels(path string) ([]agro.LandParcel, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("id", "area", "soil_type"); err != nil {
		return nil, err
	}

	parcels := make([]agro.LandParcel, 0, len(t.rows))
	for i := range t.rows {
		p, err := t.parcel(i)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func (t *table) parcel(row int) (agro.LandParcel, error) {
	var p agro.LandParcel
	var err error

	p.ID = t.cell(row, "id")
	if p.ID == "" {
		return p, t.rowErr(row, "id", errors.New("empty value"))
	}

	if p.Area, err = t.float(row, "area"); err != nil {
		return p, err
	}
	if p.SoilType, err = agro.ParseSoilType(t.cell(row, "soil_type")); err != nil {
		return p, t.rowErr(row, "soil_type", err)
	}
	if p.HasIrrigation, err = t.boolOr(row, "has_irrigation", true); err != nil {
		return p, err
	}
	if p.WaterCapacity, err = t.optFloat(row, "water_capacity"); err != nil {
		return p, err
	}
	if p.IsDivisible, err = t.boolOr(row, "is_divisible", true); err != nil {
		return p, err
	}
	if p.PreviousRotationGroup, err = t.intOr(row, "previous_crop_rotation_group", 0); err != nil {
		return p, err
	}
	if p.QualityFactor, err = t.floatOr(row, "quality_factor", 1.0); err != nil {
		return p, err
	}
	if p.SlopePercent, err = t.floatOr(row, "slope_percentage", 0); err != nil {
		return p, err
	}

	return p, nil
}

// SaveCrops writes the crops table in canonical column order.
func SaveCrops(path string, crops []agro.Crop) error {
	records := [][]string{cropColumns}
	for i := range crops {
		c := &crops[i]
		records = append(records, []string{
			c.Name,
			num(c.ProfitPerHectare),
			num(c.WaterRequirement),
			num(c.LaborHours),
			num(c.CostPerHectare),
			strconv.Itoa(c.GrowthDurationDays),
			joinSoils(c.PreferredSoilTypes),
			string(c.PlantingSeason),
			num(c.MinArea),
			optNum(c.MaxArea),
			strconv.Itoa(c.RotationGroup),
			num(c.FertilizerNeed),
			num(c.PesticideNeed),
		})
	}

	return writeCSV(path, records)
}

// SaveParcels writes the parcels table in canonical column order.
func SaveParcels(path string, parcels []agro.LandParcel) error {
	records := [][]string{parcelColumns}
	for i := range parcels {
		p := &parcels[i]
		records = append(records, []string{
			p.ID,
			num(p.Area),
			string(p.SoilType),
			boolStr(p.HasIrrigation),
			optNum(p.WaterCapacity),
			boolStr(p.IsDivisible),
			strconv.Itoa(p.PreviousRotationGroup),
			num(p.QualityFactor),
			num(p.SlopePercent),
		})
	}

	return writeCSV(path, records)
}

// writeCSV creates the file and writes all records through encoding/csv,
// which quotes fields containing commas (the soil lists).
func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataio: create %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("dataio: write %s: %w", filepath.Base(path), err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("dataio: close %s: %w", filepath.Base(path), err)
	}

	return nil
}

// num renders a float with the shortest exact representation, so saved
// tables round-trip without drift.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// optNum renders a nil ceiling as the empty cell.
func optNum(v *float64) string {
	if v == nil {
		return ""
	}

	return num(*v)
}

func boolStr(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

func joinSoils(soils []agro.SoilType) string {
	parts := make([]string, len(soils))
	for i, s := range soils {
		parts[i] = string(s)
	}

	return strings.Join(parts, ",")
}
