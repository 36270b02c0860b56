package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
)

// ErrNoShape indicates a sheet matches none of the known layouts.
var ErrNoShape = errors.New("no known sheet layout")

// ErrAmbiguousShape indicates a sheet matches both named layouts and its name does not tell them apart.
var ErrAmbiguousShape = errors.New("ambiguous sheet layout")

// Detect determines the shape of a sheet from its column set.
// Named layouts win over the free grid; a sheet carrying both named layouts
// is resolved by the dynamic/fixed hint in its name.
func Detect(sheet *models.RawSheet, cfg *config.Config) (models.SheetShape, error) {
	missingDynamic := missingColumns(sheet, cfg.Dynamic.Required())
	missingFixed := missingColumns(sheet, cfg.Fixed.Required())

	switch {
	case len(missingDynamic) == 0 && len(missingFixed) == 0:
		isDynamic := strings.Contains(sheet.Name, cfg.DynamicHint)
		isFixed := strings.Contains(sheet.Name, cfg.FixedHint)
		if isDynamic && !isFixed {
			return models.ShapeDynamicNamed, nil
		}
		if isFixed && !isDynamic {
			return models.ShapeFixedNamed, nil
		}
		return "", ErrAmbiguousShape
	case len(missingDynamic) == 0:
		return models.ShapeDynamicNamed, nil
	case len(missingFixed) == 0:
		return models.ShapeFixedNamed, nil
	}

	if isFreeGrid(sheet, cfg.FreeGrid) {
		return models.ShapeFreeGrid, nil
	}

	return "", fmt.Errorf("%w: missing dynamic columns %q, missing fixed columns %q, free grid needs unlabeled columns %d and %d",
		ErrNoShape, missingDynamic, missingFixed, cfg.FreeGrid.CoachIndex, cfg.FreeGrid.EmailIndex)
}

func missingColumns(sheet *models.RawSheet, required []string) []string {
	var missing []string
	for _, col := range required {
		if !sheet.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// isFreeGrid checks the positional coach name and email columns: both must
// exist and carry placeholder labels.
func isFreeGrid(sheet *models.RawSheet, cols config.FreeGridColumns) bool {
	for _, idx := range []int{cols.CoachIndex, cols.EmailIndex} {
		if idx < 0 || idx >= len(sheet.Columns) {
			return false
		}
		if !parser.IsUnnamed(sheet.Columns[idx]) {
			return false
		}
	}
	return true
}
