// xlsx.go - single-workbook solution export.

package dataio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/analyze"
	"github.com/cropsolve/cropsolve/solve"
)

// Workbook sheet names, in tab order.
var xlsxSheets = []string{"Allocation", "Crops", "Parcels", "KPIs"}

// ExportXLSX writes the solution and its analytics into one workbook with
// the sheets Allocation, Crops, Parcels and KPIs.
func ExportXLSX(path string, p *agro.Problem, s *solve.Solution) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", xlsxSheets[0])
	for _, name := range xlsxSheets[1:] {
		f.NewSheet(name)
	}
	f.SetActiveSheet(0)

	if err := fillSheet(f, "Allocation", allocationSheetRows(s)); err != nil {
		return err
	}
	if err := fillSheet(f, "Crops", cropSheetRows(p, s)); err != nil {
		return err
	}
	if err := fillSheet(f, "Parcels", parcelSheetRows(p, s)); err != nil {
		return err
	}
	if err := fillSheet(f, "KPIs", kpiSheetRows(p, s)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("dataio: save workbook: %w", err)
	}

	return nil
}

func fillSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("dataio: sheet %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}

func allocationSheetRows(s *solve.Solution) [][]interface{} {
	rows := [][]interface{}{{"Crop", "Parcel", "Area (ha)"}}
	for _, a := range s.Allocations {
		rows = append(rows, []interface{}{a.Crop, a.Parcel, a.Area})
	}

	return rows
}

func cropSheetRows(p *agro.Problem, s *solve.Solution) [][]interface{} {
	rows := [][]interface{}{{"Crop", "Total Area (ha)", "Parcels", "Profit", "Water (m3)", "Labor (h)", "Cost", "Season"}}
	for _, cs := range analyze.CropSummaries(p, s) {
		rows = append(rows, []interface{}{
			cs.Name, cs.TotalArea, cs.ParcelCount, cs.Profit,
			cs.Water, cs.Labor, cs.Cost, string(cs.Season),
		})
	}

	return rows
}

func parcelSheetRows(p *agro.Problem, s *solve.Solution) [][]interface{} {
	rows := [][]interface{}{{"Parcel", "Total Area (ha)", "Used Area (ha)", "Utilization (%)", "Soil", "Irrigation"}}
	for _, ps := range analyze.ParcelSummaries(p, s) {
		irrigation := "No"
		if ps.Irrigated {
			irrigation = "Yes"
		}
		rows = append(rows, []interface{}{
			ps.ID, ps.TotalArea, ps.UsedArea, ps.UtilizationPercent,
			string(ps.Soil), irrigation,
		})
	}

	return rows
}

func kpiSheetRows(p *agro.Problem, s *solve.Solution) [][]interface{} {
	k := analyze.KPIs(p, s)

	return [][]interface{}{
		{"Metric", "Value"},
		{"Total Profit", k.TotalProfit},
		{"Profit per Hectare", k.ProfitPerHectare},
		{"Land Utilization (%)", k.LandUtilizationPercent},
		{"Water Efficiency", k.WaterEfficiency},
		{"Labor Efficiency", k.LaborEfficiency},
		{"ROI (%)", k.ROIPercent},
		{"Crops Selected", k.CropsSelected},
		{"Avg Area per Crop", k.AvgAreaPerCrop},
		{"Diversity Index", k.DiversityIndex},
		{"Solve Time (s)", k.SolveSeconds},
	}
}
