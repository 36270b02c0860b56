package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/parser"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/pattern"
)

// ICSOptions controls calendar export.
type ICSOptions struct {
	// Location is the zone the literal record times are written in.
	Location *time.Location
	// Duration of each session.
	Duration time.Duration
	// From anchors the first occurrence: the first matching weekday on or after it.
	// It is also the DTSTAMP of every event.
	From time.Time
}

var icsWeekdays = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// ToICS writes one weekly recurring event per record and returns how many
// were written. Records whose day or time cannot be read are skipped.
func ToICS(records []models.CourseRecord, opts ICSOptions, w io.Writer) (int, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = time.Hour
	}
	from := opts.From
	if from.IsZero() {
		from = time.Now()
	}
	from = from.In(loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	written := 0
	for i, rec := range records {
		day, ok := pattern.ParseDay(rec.DayOfWeek)
		if !ok {
			continue
		}
		hour, minute, ok := ParseClock(rec.Time)
		if !ok {
			continue
		}

		offset := (day - parser.WeekdayIndex(from) + 7) % 7
		date := from.AddDate(0, 0, offset)
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)

		rule := rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{icsWeekdays[day]},
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d@coursesched", start.UTC().Format("20060102T150405Z"), i))
		event.SetDtStampTime(from)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(duration))
		event.SetSummary(rec.Name)
		event.SetDescription(rec.Description)
		event.AddRrule(rule.RRuleString())
		if rec.ZoomLink != "" {
			event.SetLocation(rec.ZoomLink)
		}
		written++
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, err
	}
	return written, nil
}

// ParseClock reads a wall-clock time such as "3:00pm", "10:30 AM", "18:00",
// "18h00" or "18h".
func ParseClock(s string) (hour, minute int, ok bool) {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if s == "" {
		return 0, 0, false
	}

	for _, layout := range []string{"3:04pm", "15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}

	// French notation: 18h00, 18h.
	h, m, found := strings.Cut(s, "h")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	if m == "" {
		return hour, 0, true
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
