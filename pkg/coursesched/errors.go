package coursesched

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoValidSheets indicates no sheet passed the name and structure checks.
var ErrNoValidSheets = errors.New("no valid schedule sheets")

// ProcessingError represents a fatal error of an extraction run.
type ProcessingError struct {
	Path  string
	Stage string // "open", "load", "extract"
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing %q failed (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError creates a new ProcessingError.
func NewProcessingError(path, stage string, err error) *ProcessingError {
	return &ProcessingError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

// ExtractionError represents an error while reading or extracting one sheet.
type ExtractionError struct {
	SheetName string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Err:       err,
	}
}
