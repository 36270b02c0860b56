package models

// SheetShape identifies which column mapping and walking strategy applies to a sheet.
type SheetShape string

const (
	// ShapeDynamicNamed is a sheet with named coach, zoom link, time and topic columns.
	ShapeDynamicNamed SheetShape = "dynamic_named"
	// ShapeFixedNamed is a sheet with named day, time, telegram group and course title columns.
	ShapeFixedNamed SheetShape = "fixed_named"
	// ShapeFreeGrid is a sheet with a leading coach column and course text scattered in unlabeled cells.
	ShapeFreeGrid SheetShape = "free_grid"
)

// Shapes lists every known shape in detection order.
var Shapes = []SheetShape{ShapeDynamicNamed, ShapeFixedNamed, ShapeFreeGrid}
