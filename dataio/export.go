// export.go - solution tables for spreadsheets and downstream pipelines.

package dataio

import (
	"fmt"
	"strconv"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/analyze"
	"github.com/cropsolve/cropsolve/solve"
)

// Export table headers. The allocation table is row-per-assignment; the
// crop and parcel tables carry the aggregated summaries.
var (
	allocationHeader = []string{"Crop", "Parcel", "Area (ha)"}
	cropsHeader      = []string{"name", "total_area", "num_parcels", "profit", "water_needed", "labor_needed", "cost", "season"}
	parcelsHeader    = []string{"Parcel ID", "Total Area (ha)", "Used Area (ha)", "Utilization (%)", "Soil Type", "Irrigation"}
)

// ExportCSV writes three CSV files next to each other:
// {base}_allocation.csv, {base}_crops.csv and {base}_parcels.csv.
// It returns the written paths in that order.
func ExportCSV(base string, p *agro.Problem, s *solve.Solution) ([]string, error) {
	paths := []string{
		base + "_allocation.csv",
		base + "_crops.csv",
		base + "_parcels.csv",
	}

	if err := writeCSV(paths[0], allocationRecords(s)); err != nil {
		return nil, err
	}
	if err := writeCSV(paths[1], cropRecords(p, s)); err != nil {
		return nil, err
	}
	if err := writeCSV(paths[2], parcelRecords(p, s)); err != nil {
		return nil, err
	}

	return paths, nil
}

func allocationRecords(s *solve.Solution) [][]string {
	records := [][]string{allocationHeader}
	for _, a := range s.Allocations {
		records = append(records, []string{a.Crop, a.Parcel, fmt.Sprintf("%.2f", a.Area)})
	}

	return records
}

func cropRecords(p *agro.Problem, s *solve.Solution) [][]string {
	records := [][]string{cropsHeader}
	for _, cs := range analyze.CropSummaries(p, s) {
		records = append(records, []string{
			cs.Name,
			fmt.Sprintf("%.2f", cs.TotalArea),
			strconv.Itoa(cs.ParcelCount),
			fmt.Sprintf("%.2f", cs.Profit),
			fmt.Sprintf("%.2f", cs.Water),
			fmt.Sprintf("%.2f", cs.Labor),
			fmt.Sprintf("%.2f", cs.Cost),
			string(cs.Season),
		})
	}

	return records
}

func parcelRecords(p *agro.Problem, s *solve.Solution) [][]string {
	records := [][]string{parcelsHeader}
	for _, ps := range analyze.ParcelSummaries(p, s) {
		irrigation := "No"
		if ps.Irrigated {
			irrigation = "Yes"
		}
		records = append(records, []string{
			ps.ID,
			fmt.Sprintf("%.2f", ps.TotalArea),
			fmt.Sprintf("%.2f", ps.UsedArea),
			fmt.Sprintf("%.1f", ps.UtilizationPercent),
			string(ps.Soil),
			irrigation,
		})
	}

	return records
}
