package extractor

import (
	"testing"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

// sheetOf builds a cleaned sheet the way the loader hands it over.
func sheetOf(name string, rows [][]string) *models.RawSheet {
	s := parser.Clean(parser.FromRows(name, rows))
	return &s
}

func extract(t *testing.T, shape models.SheetShape, sheet *models.RawSheet) []models.CourseRecord {
	t.Helper()
	strategy, err := For(shape, config.Default(), logx.Nop())
	if err != nil {
		t.Fatalf("For(%q) failed: %v", shape, err)
	}
	return strategy.Extract(sheet)
}

func days(records []models.CourseRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.DayOfWeek
	}
	return out
}
