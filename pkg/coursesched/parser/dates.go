package parser

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are the renderings excelize produces for common date formats,
// plus ISO forms typed by hand.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01-02-06 15:04",
	"1-2-06 15:04",
	"01/02/06 15:04",
	"1/2/06 15:04",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006 15:04",
	"02/01/2006",
	"Jan 2, 2006 3:04 PM",
	"January 2, 2006",
	time.RFC3339,
}

// ParseDateTime parses a date cell. Numeric cells are Excel serial dates.
func ParseDateTime(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case int64:
		return serialDate(float64(x))
	case float64:
		return serialDate(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func serialDate(f float64) (time.Time, bool) {
	if f <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WeekdayIndex converts a time.Weekday to a Monday-based index (0=Monday).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
