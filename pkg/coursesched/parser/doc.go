// Package parser reads workbook sheets through excelize into RawSheets and
// provides the cell-level helpers (cleaning, text rendering, dates, data
// bounds) the loader and extractors share.
package parser
