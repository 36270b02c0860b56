package parser

import (
	"fmt"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// Bounds is the 1-based bounding box of the non-empty cells of a sheet.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	NonEmpty       int
}

// Density is the share of non-empty cells within the bounds.
func (b Bounds) Density() float64 {
	total := (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
	if total <= 0 {
		return 0
	}
	return float64(b.NonEmpty) / float64(total)
}

// Range renders the bounds in Excel notation (e.g. "A1:D10").
func (b Bounds) Range() string {
	startCell, _ := excelize.CoordinatesToCellName(b.MinCol, b.MinRow)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol, b.MaxRow)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DataBounds finds the bounding box of non-empty cells, header included.
// It returns false for a sheet without any data.
func DataBounds(sheet models.RawSheet) (Bounds, bool) {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}
	mark := func(r, c int) {
		if b.MinRow < 0 || r < b.MinRow {
			b.MinRow = r
		}
		if r > b.MaxRow {
			b.MaxRow = r
		}
		if b.MinCol < 0 || c < b.MinCol {
			b.MinCol = c
		}
		if c > b.MaxCol {
			b.MaxCol = c
		}
		b.NonEmpty++
	}

	for colIdx, label := range sheet.Columns {
		if !IsUnnamed(label) {
			mark(1, colIdx+1)
		}
	}
	for _, row := range sheet.Rows {
		for colIdx, cell := range row.Cells {
			if Text(cell) != "" {
				mark(row.R, colIdx+1)
			}
		}
	}

	if b.MinRow < 0 {
		return Bounds{}, false
	}
	return b, true
}

// DetectTable reports the range of a sheet when its data looks like a table.
func DetectTable(sheet models.RawSheet, params TableDetectionParams) (string, bool) {
	b, ok := DataBounds(sheet)
	if !ok {
		return "", false
	}
	if b.NonEmpty < params.MinNonemptyCells {
		return "", false
	}
	if b.Density() < params.DensityMin {
		return "", false
	}
	return b.Range(), true
}
