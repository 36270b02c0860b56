package extractor

import (
	"fmt"
	"strings"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

// Strategy extracts course records from a sheet of one shape.
type Strategy interface {
	Extract(sheet *models.RawSheet) []models.CourseRecord
}

// For returns the strategy registered for shape.
func For(shape models.SheetShape, cfg *config.Config, log logx.Logger) (Strategy, error) {
	switch shape {
	case models.ShapeDynamicNamed:
		return &Dynamic{cfg: cfg, log: log}, nil
	case models.ShapeFixedNamed:
		return &Fixed{cfg: cfg, log: log}, nil
	case models.ShapeFreeGrid:
		return &FreeGrid{cfg: cfg, log: log}, nil
	default:
		return nil, fmt.Errorf("no extraction strategy for shape %q", shape)
	}
}

// textCell returns the trimmed text of a string cell.
// Non-string and blank cells report false.
func textCell(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// anyText returns the trimmed rendering of any cell value.
func anyText(v interface{}) string {
	return strings.TrimSpace(parser.Text(v))
}

func logSkip(log logx.Logger, sheet *models.RawSheet, row models.Row, reason string) {
	log.Debug("row skipped",
		logx.String("sheet", sheet.Name),
		logx.Int("row", row.R),
		logx.String("reason", reason),
	)
}
