package coursesched

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/extractor"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
	"github.com/xuri/excelize/v2"
)

const (
	inspectSampleRows = 5
	inspectMaxValues  = 20
)

// inspectKeywords select the columns whose distinct values are reported.
var inspectKeywords = []string{"coach", "professor", "level", "niveau", "schedule", "horaire", "telegram", "zoom", "day"}

// SheetReport describes one sheet of a workbook as the loader sees it.
type SheetReport struct {
	Name    string   `json:"name"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
	// Selected reports whether the sheet name carries the schedule marker.
	Selected bool   `json:"selected"`
	Shape    string `json:"shape,omitempty"`
	Rejected string `json:"rejected,omitempty"`
	// Range is the used cell range, e.g. "A1:F12".
	Range  string              `json:"range,omitempty"`
	Sample [][]string          `json:"sample,omitempty"`
	Values map[string][]string `json:"values,omitempty"`
}

// Inspect reports the structure of every sheet of a workbook, selected or not.
func Inspect(path string, opts Options) ([]SheetReport, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, NewProcessingError(path, "open", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewProcessingError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	cfg := opts.config()
	var reports []SheetReport
	for _, sheetName := range f.GetSheetList() {
		raw, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, NewProcessingError(path, "load", NewExtractionError(sheetName, err))
		}

		report := SheetReport{
			Name:     sheetName,
			Rows:     len(raw.Rows),
			Columns:  raw.Columns,
			Selected: strings.Contains(sheetName, cfg.SheetMarker),
		}
		if shape, err := extractor.Detect(&raw, cfg); err != nil {
			report.Rejected = err.Error()
		} else {
			report.Shape = string(shape)
		}
		if rng, ok := parser.DetectTable(raw, parser.DefaultTableParams()); ok {
			report.Range = rng
		}

		sheet := parser.Clean(raw)
		for i, row := range sheet.Rows {
			if i == inspectSampleRows {
				break
			}
			line := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				line[j] = parser.Text(cell)
			}
			report.Sample = append(report.Sample, line)
		}

		for colIdx, label := range sheet.Columns {
			if !isKeyColumn(label) {
				continue
			}
			if values := distinctValues(sheet.Rows, colIdx); len(values) > 0 {
				if report.Values == nil {
					report.Values = make(map[string][]string)
				}
				report.Values[label] = values
			}
		}

		reports = append(reports, report)
	}
	return reports, nil
}

func isKeyColumn(label string) bool {
	lower := strings.ToLower(label)
	for _, kw := range inspectKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// distinctValues returns the distinct non-empty values of a column in first
// seen order, or nil when there are more than inspectMaxValues of them.
func distinctValues(rows []models.Row, col int) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range rows {
		v := strings.TrimSpace(parser.Text(row.Cell(col)))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
		if len(values) > inspectMaxValues {
			return nil
		}
	}
	return values
}
