// Package pattern recovers schedule pattern, level, time and weekday from
// loosely formatted course text such as "Jane - ABG - MW - 3:00pm".
package pattern

import (
	"regexp"
	"strings"
)

// Schedule patterns in match priority order.
var Patterns = []string{"MW", "TT", "SS", "FS"}

// DefaultLevels lists the known course levels in match priority order.
var DefaultLevels = []string{"BBG", "ABG", "IG"}

var timeRE = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)`)

// Pattern returns the first schedule pattern of Patterns contained in text.
// Priority follows the list order, not the position in text.
func Pattern(text string) (string, bool) {
	return firstContained(text, Patterns)
}

// Contains reports whether text holds any schedule pattern.
func Contains(text string) bool {
	_, ok := Pattern(text)
	return ok
}

// Level returns the first of levels contained in text.
// A nil levels slice uses DefaultLevels.
func Level(text string, levels []string) (string, bool) {
	if levels == nil {
		levels = DefaultLevels
	}
	return firstContained(text, levels)
}

// Time returns the first "H:MM am" style substring of text, unmodified.
func Time(text string) (string, bool) {
	m := timeRE.FindString(text)
	return m, m != ""
}

func firstContained(text string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c != "" && strings.Contains(text, c) {
			return c, true
		}
	}
	return "", false
}
