// Package extractor turns loaded schedule sheets into course records.
//
// Each SheetShape has one Strategy. The strategies share the text scanners
// of package pattern and the record construction in course.go, and differ
// only in how they walk a sheet:
//   - Dynamic: one row per coach session, fanned out over the pattern's days
//   - Fixed: one row per day-specific session, no fan-out
//   - FreeGrid: course text scattered across unlabeled cells, strict matching
package extractor
