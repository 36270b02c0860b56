package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet into a RawSheet.
// The first row is the header; every following row becomes a data row with
// one cell per column. Blank cells are nil. Only cells stored as numbers are
// parsed; text cells keep their exact string.
func ReadSheet(f *excelize.File, sheetName string) (models.RawSheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.RawSheet{}, err
	}
	return fromRows(sheetName, rows, func(rowIdx, colIdx int) bool {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
		if err != nil {
			return false
		}
		cellType, err := f.GetCellType(sheetName, cell)
		if err != nil {
			return false
		}
		return cellType == excelize.CellTypeUnset || cellType == excelize.CellTypeNumber
	}), nil
}

// FromRows builds a RawSheet from a string grid without cell type
// information. Any cell whose text is a canonical number is parsed.
func FromRows(sheetName string, rows [][]string) models.RawSheet {
	return fromRows(sheetName, rows, func(int, int) bool { return true })
}

// fromRows builds a RawSheet; numeric reports whether the cell at the
// 0-based grid position may hold a number.
func fromRows(sheetName string, rows [][]string, numeric func(rowIdx, colIdx int) bool) models.RawSheet {
	sheet := models.RawSheet{Name: sheetName}
	if len(rows) == 0 {
		return sheet
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	sheet.Columns = columnLabels(rows[0], width)

	for rowIdx, row := range rows[1:] {
		cells := make([]interface{}, width)
		for colIdx, cellValue := range row {
			if strings.TrimSpace(cellValue) == "" {
				continue
			}
			if numeric(rowIdx+1, colIdx) {
				cells[colIdx] = parseValue(cellValue)
			} else {
				cells[colIdx] = cellValue
			}
		}
		sheet.Rows = append(sheet.Rows, models.Row{
			R:     rowIdx + 2, // 1-based, after the header
			Cells: cells,
		})
	}

	return sheet
}

// columnLabels turns a header row into unique labels.
// Blank headers become "Unnamed: <index>", repeated labels get a ".<n>" suffix.
func columnLabels(header []string, width int) []string {
	labels := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		label := ""
		if i < len(header) {
			label = strings.TrimSpace(header[i])
		}
		if label == "" {
			label = UnnamedLabel(i)
		}
		if n, dup := seen[label]; dup {
			seen[label] = n + 1
			label = fmt.Sprintf("%s.%d", label, n+1)
		} else {
			seen[label] = 0
		}
		labels[i] = label
	}
	return labels
}

// UnnamedLabel is the placeholder label of a column without a header.
func UnnamedLabel(idx int) string {
	return "Unnamed: " + strconv.Itoa(idx)
}

// IsUnnamed reports whether label is a placeholder for a blank header.
func IsUnnamed(label string) bool {
	return strings.HasPrefix(label, "Unnamed: ")
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the input
// string. A number is only returned when Text renders it back to exactly s,
// so "0900", "+33612", "15.30" and "NaN" stay text.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if Text(i) == s {
			return i
		}
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if Text(f) == s {
			return f
		}
	}
	// Return as string
	return s
}

// Text renders a cell value as a string; nil renders as "".
func Text(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
