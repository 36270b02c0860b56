package extractor

import (
	"fmt"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/pattern"
)

// course holds the fields recovered from one source row or cell.
type course struct {
	instructor   string
	coach        string
	level        string
	time         string
	zoomLink     string
	telegram     string
	scheduleType string
}

// on builds the record of the course meeting on day under schedule pattern p.
func (c course) on(day int, p string) models.CourseRecord {
	return models.CourseRecord{
		Name:          fmt.Sprintf("%s - %s - %s - %s", c.coach, c.level, p, c.time),
		Instructor:    c.instructor,
		ProfessorName: c.coach,
		Level:         c.level,
		Schedule:      p,
		DayOfWeek:     pattern.DayName(day),
		Time:          c.time,
		ZoomLink:      c.zoomLink,
		TelegramGroup: c.telegram,
		ScheduleType:  c.scheduleType,
		Description:   fmt.Sprintf("Cours de %s avec %s, %s à %s", c.level, c.coach, p, c.time),
	}
}
