package extractor

import (
	"strings"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/pattern"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

// FreeGrid extracts records from sheets without reliable headers: a coach
// column followed by course text in arbitrary cells.
type FreeGrid struct {
	cfg *config.Config
	log logx.Logger
}

// Extract scans every cell of each coach row. A cell yields records only
// when pattern, level and time are all present; nothing is defaulted.
func (g *FreeGrid) Extract(sheet *models.RawSheet) []models.CourseRecord {
	cols := g.cfg.FreeGrid
	scheduleType := models.ScheduleFixed
	if strings.Contains(sheet.Name, cols.DynamicMarker) {
		scheduleType = models.ScheduleDynamic
	}

	var records []models.CourseRecord
	// Header and title rows carry no coach and fall through here.
	for _, row := range sheet.Rows {
		coach, ok := textCell(row.Cell(cols.CoachIndex))
		if !ok {
			continue
		}
		telegram := anyText(sheet.Value(row, cols.TelegramGroup))

		for colIdx, cell := range row.Cells {
			text, ok := cell.(string)
			if !ok || !pattern.Contains(text) {
				continue
			}
			p, _ := pattern.Pattern(text)
			level, hasLevel := pattern.Level(text, g.cfg.Levels)
			tm, hasTime := pattern.Time(text)
			if !hasLevel || !hasTime {
				g.log.Debug("cell skipped",
					logx.String("sheet", sheet.Name),
					logx.Int("row", row.R),
					logx.Int("col", colIdx+1),
					logx.Bool("level", hasLevel),
					logx.Bool("time", hasTime),
				)
				continue
			}

			c := course{
				instructor:   g.cfg.Instructor,
				coach:        coach,
				level:        level,
				time:         tm,
				telegram:     telegram,
				scheduleType: scheduleType,
			}
			for _, day := range pattern.Days(p) {
				rec := c.on(day, p)
				records = append(records, rec)
				g.log.Debug("course extracted",
					logx.String("sheet", sheet.Name),
					logx.Int("row", row.R),
					logx.String("name", rec.Name),
					logx.String("day", rec.DayOfWeek),
				)
			}
		}
	}

	return records
}
