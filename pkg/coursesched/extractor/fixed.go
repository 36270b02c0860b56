package extractor

import (
	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/pattern"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

// Fixed extracts records from sheets keyed by day of week.
type Fixed struct {
	cfg *config.Config
	log logx.Logger
}

// Extract emits exactly one record per row carrying a course title and a day.
func (x *Fixed) Extract(sheet *models.RawSheet) []models.CourseRecord {
	cols := x.cfg.Fixed
	var records []models.CourseRecord

	for _, row := range sheet.Rows {
		title := anyText(sheet.Value(row, cols.Title))
		dayText := anyText(sheet.Value(row, cols.Day))
		if title == "" || dayText == "" {
			logSkip(x.log, sheet, row, "no course title or day")
			continue
		}

		day, ok := pattern.ParseDay(dayText)
		if !ok {
			x.log.Debug("unknown day, using Monday",
				logx.String("sheet", sheet.Name),
				logx.Int("row", row.R),
				logx.String("day", dayText),
			)
			day = pattern.Monday
		}

		p, ok := pattern.Pattern(title)
		if !ok {
			p = pattern.ForDay(day)
		}
		level, ok := pattern.Level(title, x.cfg.Levels)
		if !ok {
			level = x.cfg.DefaultLevel
		}
		tm, ok := pattern.Time(title)
		if !ok {
			tm = anyText(sheet.Value(row, cols.Time))
		}

		c := course{
			instructor:   x.cfg.Instructor,
			coach:        anyText(sheet.Value(row, cols.Coach)),
			level:        level,
			time:         tm,
			telegram:     anyText(sheet.Value(row, cols.TelegramGroup)),
			scheduleType: models.ScheduleFixed,
		}
		rec := c.on(day, p)
		records = append(records, rec)
		x.log.Debug("course extracted",
			logx.String("sheet", sheet.Name),
			logx.Int("row", row.R),
			logx.String("name", rec.Name),
			logx.String("day", rec.DayOfWeek),
		)
	}

	return records
}
