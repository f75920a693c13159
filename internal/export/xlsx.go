// Package export writes fit results to an xlsx workbook.
package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// Row is one processed file's fit outcome.
type Row struct {
	File          string
	FieldStrength float64
	Angle         int
	Ic            float64
	N             float64
	SigmaIc       float64
	SigmaN        float64
	Converged     bool
}

// Summary counts the run outcome.
type Summary struct {
	Seen         int
	Processed    int
	Skipped      int
	NonConverged int
}

// WriteXLSX saves a workbook with a Summary sheet and a Results sheet, one
// row per processed file.
func WriteXLSX(path string, sum Summary, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)
	f.SetCellValue(summary, "A1", "Metric")
	f.SetCellValue(summary, "B1", "Count")

	counts := []struct {
		name string
		n    int
	}{
		{"Files seen", sum.Seen},
		{"Processed", sum.Processed},
		{"Skipped", sum.Skipped},
		{"Non-converged fits", sum.NonConverged},
	}
	for i, c := range counts {
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+2), c.name)
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+2), c.n)
	}

	const results = "Results"
	f.NewSheet(results)

	headers := []string{"File", "Field [T]", "Angle [deg]", "Ic [A]", "N", "Sigma Ic", "Sigma N", "Converged"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(results, cell, h)
	}

	for r, row := range rows {
		values := []interface{}{
			row.File,
			row.FieldStrength,
			row.Angle,
			cellNumber(row.Ic),
			cellNumber(row.N),
			cellNumber(row.SigmaIc),
			cellNumber(row.SigmaN),
			row.Converged,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(results, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// cellNumber keeps non-finite floats out of numeric cells.
func cellNumber(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return v
}
