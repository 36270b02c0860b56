package parser

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input   interface{}
		weekday time.Weekday
		ok      bool
	}{
		{"2025-10-14 18:00", time.Tuesday, true},
		{"2025-10-18", time.Saturday, true},
		{"10/15/25 18:00", time.Wednesday, true},
		{"10/15/2025", time.Wednesday, true},
		{float64(45580), time.Tuesday, true}, // 2024-10-15
		{int64(45580), time.Tuesday, true},
		{"not a date", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{float64(-3), 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDateTime(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseDateTime(%v) ok = %v, expected %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got.Weekday() != tt.weekday {
			t.Errorf("ParseDateTime(%v) = %v (%v), expected %v", tt.input, got, got.Weekday(), tt.weekday)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := WeekdayIndex(monday.AddDate(0, 0, i)); got != i {
			t.Errorf("WeekdayIndex(+%d) = %d", i, got)
		}
	}
}
