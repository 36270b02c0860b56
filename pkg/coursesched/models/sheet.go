package models

// RawSheet represents a loaded sheet: its header labels and data rows.
type RawSheet struct {
	// Name is the sheet title.
	Name string `json:"name"`
	// Columns lists the column labels in sheet order.
	Columns []string `json:"columns"`
	// Rows contains the data rows below the header.
	Rows []Row `json:"rows,omitempty"`
	// Shape is the layout detected at load time.
	Shape SheetShape `json:"shape,omitempty"`
}

// ColumnIndex returns the index of the column labelled label, or -1.
func (s *RawSheet) ColumnIndex(label string) int {
	for i, c := range s.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the sheet has a column labelled label.
func (s *RawSheet) HasColumn(label string) bool {
	return s.ColumnIndex(label) >= 0
}

// Value returns the cell of row under the column labelled label.
// Missing columns yield nil.
func (s *RawSheet) Value(row Row, label string) interface{} {
	return row.Cell(s.ColumnIndex(label))
}
