package coursesched

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/extractor"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/logx"
	"github.com/xuri/excelize/v2"
)

// Extract extracts course records from an Excel file.
// Records are concatenated in sheet order, then row order; nothing is
// sorted or deduplicated. Every failure is returned as a *ProcessingError.
func Extract(path string, opts Options) ([]models.CourseRecord, error) {
	log := opts.Logger.With(logx.String("path", path))

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrFileNotFound
		}
		log.Error("cannot read workbook", logx.Err(err))
		return nil, NewProcessingError(path, "open", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Error("cannot open workbook", logx.Err(err))
		return nil, NewProcessingError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	opts.Logger = log
	wb, err := Load(f, filepath.Base(path), opts)
	if err != nil {
		return nil, NewProcessingError(path, "load", err)
	}

	records, err := ExtractWorkbook(wb, opts)
	if err != nil {
		return nil, NewProcessingError(path, "extract", err)
	}

	log.Info("extraction finished",
		logx.Int("sheets", len(wb.Sheets)),
		logx.Int("courses", len(records)),
	)
	return records, nil
}

// ExtractWorkbook dispatches every loaded sheet to the strategy of its shape.
func ExtractWorkbook(wb *models.Workbook, opts Options) ([]models.CourseRecord, error) {
	records := []models.CourseRecord{}
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		strategy, err := extractor.For(sheet.Shape, opts.config(), opts.Logger)
		if err != nil {
			return nil, NewExtractionError(sheet.Name, err)
		}
		found := strategy.Extract(sheet)
		opts.Logger.Info("sheet extracted",
			logx.String("sheet", sheet.Name),
			logx.String("shape", string(sheet.Shape)),
			logx.Int("courses", len(found)),
		)
		records = append(records, found...)
	}
	return records, nil
}
