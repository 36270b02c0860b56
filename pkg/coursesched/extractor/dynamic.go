package extractor

import (
	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/pattern"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

// Dynamic extracts records from sheets with one named row per coach session.
type Dynamic struct {
	cfg *config.Config
	log logx.Logger
}

// Extract emits one record per day of each row's schedule.
//
// Days come from the topic's pattern, else from the start date column, else
// Monday. A row without a detected pattern is labelled with the pattern of
// the day it resolved to, so day and pattern always agree.
func (d *Dynamic) Extract(sheet *models.RawSheet) []models.CourseRecord {
	cols := d.cfg.Dynamic
	var records []models.CourseRecord

	for _, row := range sheet.Rows {
		coach, ok := textCell(sheet.Value(row, cols.Coach))
		if !ok {
			logSkip(d.log, sheet, row, "no coach")
			continue
		}
		topic, ok := textCell(sheet.Value(row, cols.Topic))
		if !ok {
			logSkip(d.log, sheet, row, "no topic")
			continue
		}

		p, hasPattern := pattern.Pattern(topic)
		level, hasLevel := pattern.Level(topic, d.cfg.Levels)
		if !hasPattern && !hasLevel {
			logSkip(d.log, sheet, row, "no pattern or level in topic")
			continue
		}
		tm, ok := pattern.Time(topic)
		if !ok {
			tm = anyText(sheet.Value(row, cols.Time))
		}
		if !hasLevel {
			level = d.cfg.DefaultLevel
		}

		var days []int
		if hasPattern {
			days = pattern.Days(p)
		} else {
			days = []int{d.startDay(sheet, row)}
		}

		c := course{
			instructor:   d.cfg.Instructor,
			coach:        coach,
			level:        level,
			time:         tm,
			zoomLink:     anyText(sheet.Value(row, cols.ZoomLink)),
			scheduleType: models.ScheduleDynamic,
		}
		for _, day := range days {
			dayPattern := p
			if !hasPattern {
				dayPattern = pattern.ForDay(day)
			}
			rec := c.on(day, dayPattern)
			records = append(records, rec)
			d.log.Debug("course extracted",
				logx.String("sheet", sheet.Name),
				logx.Int("row", row.R),
				logx.String("name", rec.Name),
				logx.String("day", rec.DayOfWeek),
			)
		}
	}

	return records
}

// startDay returns the weekday of the row's start date, or Monday when the
// column is missing or unparseable.
func (d *Dynamic) startDay(sheet *models.RawSheet, row models.Row) int {
	if !sheet.HasColumn(d.cfg.Dynamic.Start) {
		return pattern.Monday
	}
	v := sheet.Value(row, d.cfg.Dynamic.Start)
	t, ok := parser.ParseDateTime(v)
	if !ok {
		d.log.Debug("start date not parseable, using Monday",
			logx.String("sheet", sheet.Name),
			logx.Int("row", row.R),
			logx.String("value", parser.Text(v)),
		)
		return pattern.Monday
	}
	return parser.WeekdayIndex(t)
}
