// Package models defines data structures for course schedule extraction.
package models

// Row represents a single data row of a sheet.
type Row struct {
	// R is the source row index (1-based).
	R int `json:"r"`
	// Cells holds one value per sheet column: nil, string, int64 or float64.
	Cells []interface{} `json:"c"`
}

// Cell returns the value at column index i, or nil when out of range.
func (r Row) Cell(i int) interface{} {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// IsEmpty reports whether every cell of the row is absent.
func (r Row) IsEmpty() bool {
	for _, c := range r.Cells {
		if c != nil {
			return false
		}
	}
	return true
}
