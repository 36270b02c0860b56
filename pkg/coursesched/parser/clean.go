package parser

import "github.com/ukaji3/coursesched-go/pkg/coursesched/models"

// Clean drops rows whose cells are all absent and replaces absent cells of
// text columns with "". A column is text when it holds at least one string.
// Numeric columns keep their nil cells.
func Clean(sheet models.RawSheet) models.RawSheet {
	out := sheet
	out.Rows = nil
	for _, row := range sheet.Rows {
		if row.IsEmpty() {
			continue
		}
		out.Rows = append(out.Rows, models.Row{
			R:     row.R,
			Cells: append([]interface{}(nil), row.Cells...),
		})
	}

	for col := range out.Columns {
		if !isTextColumn(out.Rows, col) {
			continue
		}
		for _, row := range out.Rows {
			if col < len(row.Cells) && row.Cells[col] == nil {
				row.Cells[col] = ""
			}
		}
	}
	return out
}

func isTextColumn(rows []models.Row, col int) bool {
	for _, row := range rows {
		if _, ok := row.Cell(col).(string); ok {
			return true
		}
	}
	return false
}
