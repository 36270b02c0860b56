package coursesched

import (
	"strings"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/extractor"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
	"github.com/ukaji3/coursesched-go/pkg/logx"
	"github.com/xuri/excelize/v2"
)

// Load selects the schedule sheets of a workbook, validates them against the
// known layouts and cleans them. Sheets are returned in workbook order.
// It fails with ErrNoValidSheets when no sheet is accepted.
func Load(f *excelize.File, bookName string, opts Options) (*models.Workbook, error) {
	cfg := opts.config()
	log := opts.Logger

	wb := &models.Workbook{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		if !strings.Contains(sheetName, cfg.SheetMarker) {
			log.Debug("sheet ignored", logx.String("sheet", sheetName))
			continue
		}

		raw, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, err)
		}

		sheet, ok := accept(raw, opts)
		if !ok {
			continue
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	if len(wb.Sheets) == 0 {
		log.Error("no valid schedule sheet found", logx.String("book", bookName))
		return nil, ErrNoValidSheets
	}
	return wb, nil
}

// accept validates and cleans one sheet, logging the outcome.
func accept(raw models.RawSheet, opts Options) (models.RawSheet, bool) {
	log := opts.Logger.With(logx.String("sheet", raw.Name))

	shape, err := extractor.Detect(&raw, opts.config())
	if err != nil {
		log.Warn("sheet rejected", logx.Err(err))
		return models.RawSheet{}, false
	}

	sheet := parser.Clean(raw)
	sheet.Shape = shape
	if len(sheet.Rows) == 0 {
		log.Warn("sheet rejected", logx.String("reason", "no data rows"))
		return models.RawSheet{}, false
	}

	log.Info("sheet accepted",
		logx.String("shape", string(shape)),
		logx.Int("rows", len(sheet.Rows)),
	)
	return sheet, true
}
