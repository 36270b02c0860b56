package models

// Workbook is the set of sheets accepted by the loader.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds accepted sheets in workbook order.
	Sheets []RawSheet `json:"sheets"`
}
