package pattern

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Day indexes run from 0 (Monday) to 6 (Sunday).
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var patternDays = map[string][]int{
	"MW": {Monday, Wednesday},
	"TT": {Tuesday, Thursday},
	"FS": {Friday, Saturday},
	"SS": {Saturday, Sunday},
}

// weekday names accepted in a DAY cell, keyed by their case-folded form.
var dayLookup = map[string]int{}

func init() {
	fold := cases.Fold()
	names := map[string]int{
		"Monday": Monday, "Tuesday": Tuesday, "Wednesday": Wednesday, "Thursday": Thursday,
		"Friday": Friday, "Saturday": Saturday, "Sunday": Sunday,
		"Lundi": Monday, "Mardi": Tuesday, "Mercredi": Wednesday, "Jeudi": Thursday,
		"Vendredi": Friday, "Samedi": Saturday, "Dimanche": Sunday,
	}
	for name, idx := range names {
		dayLookup[fold.String(name)] = idx
	}
}

// Days returns the weekday indexes a pattern meets on, in week order.
// Unknown patterns yield an empty slice.
func Days(p string) []int {
	days, ok := patternDays[p]
	if !ok {
		return []int{}
	}
	return append([]int(nil), days...)
}

// DayName maps 0..6 to Monday..Sunday.
func DayName(idx int) string {
	if idx < 0 || idx >= len(dayNames) {
		panic(fmt.Sprintf("pattern: day index %d out of range", idx))
	}
	return dayNames[idx]
}

// ForDay returns the pattern whose days include idx.
// Saturday belongs to both FS and SS and resolves to FS.
func ForDay(idx int) string {
	switch idx {
	case Monday, Wednesday:
		return "MW"
	case Tuesday, Thursday:
		return "TT"
	case Friday, Saturday:
		return "FS"
	case Sunday:
		return "SS"
	default:
		return "MW"
	}
}

// ParseDay maps an English or French weekday name to its index.
// Matching ignores case and surrounding whitespace.
func ParseDay(text string) (int, bool) {
	idx, ok := dayLookup[cases.Fold().String(strings.TrimSpace(text))]
	return idx, ok
}
