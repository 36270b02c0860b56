package extractor

import (
	"reflect"
	"testing"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
)

var dynamicHeader = []string{"Coach", "Topic ", "Zoom Link", "TIME (France)", "Start Date & Time"}

func TestDynamicFansOutPattern(t *testing.T) {
	sheet := sheetOf("Dynamic Schedule", [][]string{
		dynamicHeader,
		{"Jane", "Jane - ABG - MW - 3:00pm", "https://zoom/x", "3:00pm", ""},
	})

	records := extract(t, models.ShapeDynamicNamed, sheet)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d: %+v", len(records), records)
	}
	if got := days(records); !reflect.DeepEqual(got, []string{"Monday", "Wednesday"}) {
		t.Errorf("days = %v", got)
	}
	expected := models.CourseRecord{
		Name:          "Jane - ABG - MW - 3:00pm",
		Instructor:    "Kodjo",
		ProfessorName: "Jane",
		Level:         "ABG",
		Schedule:      "MW",
		DayOfWeek:     "Monday",
		Time:          "3:00pm",
		ZoomLink:      "https://zoom/x",
		TelegramGroup: "",
		ScheduleType:  "dynamic",
		Description:   "Cours de ABG avec Jane, MW à 3:00pm",
	}
	if records[0] != expected {
		t.Errorf("record = %+v, expected %+v", records[0], expected)
	}
}

func TestDynamicTimeFallsBackToColumn(t *testing.T) {
	sheet := sheetOf("Dynamic Schedule", [][]string{
		dynamicHeader,
		{"Jane", "Jane - BBG - TT", "", "18h00", ""},
	})

	records := extract(t, models.ShapeDynamicNamed, sheet)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Time != "18h00" || records[0].Level != "BBG" {
		t.Errorf("record = %+v", records[0])
	}
	if got := days(records); !reflect.DeepEqual(got, []string{"Tuesday", "Thursday"}) {
		t.Errorf("days = %v", got)
	}
}

func TestDynamicDayResolutionWithoutPattern(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		day      string
		schedule string
	}{
		{"start date", "2025-10-16 18:00", "Thursday", "TT"},
		{"malformed date", "someday", "Monday", "MW"},
		{"no date", "", "Monday", "MW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := sheetOf("Dynamic Schedule", [][]string{
				dynamicHeader,
				{"Jane", "Jane - IG - 6:00 PM", "", "", tt.start},
			})
			records := extract(t, models.ShapeDynamicNamed, sheet)
			if len(records) != 1 {
				t.Fatalf("Expected 1 record, got %d", len(records))
			}
			r := records[0]
			if r.DayOfWeek != tt.day || r.Schedule != tt.schedule {
				t.Errorf("got day %q schedule %q, expected %q %q", r.DayOfWeek, r.Schedule, tt.day, tt.schedule)
			}
			if r.Time != "6:00 PM" || r.Level != "IG" {
				t.Errorf("record = %+v", r)
			}
		})
	}
}

func TestDynamicWithoutStartColumn(t *testing.T) {
	sheet := sheetOf("Dynamic Schedule", [][]string{
		{"Coach", "Topic", "Zoom Link", "TIME (France)"},
		{"Jane", "Jane - BBG", "z", "9:00am"},
	})

	records := extract(t, models.ShapeDynamicNamed, sheet)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].DayOfWeek != "Monday" || records[0].Schedule != "MW" || records[0].Time != "9:00am" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestDynamicDefaultsLevel(t *testing.T) {
	sheet := sheetOf("Dynamic Schedule", [][]string{
		dynamicHeader,
		{"Jane", "Jane - SS - 2:00pm", "", "", ""},
	})

	records := extract(t, models.ShapeDynamicNamed, sheet)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Level != "ABG" {
		t.Errorf("Level = %q, expected default ABG", records[0].Level)
	}
	if got := days(records); !reflect.DeepEqual(got, []string{"Saturday", "Sunday"}) {
		t.Errorf("days = %v", got)
	}
}

func TestDynamicSkipsRows(t *testing.T) {
	sheet := sheetOf("Dynamic Schedule", [][]string{
		dynamicHeader,
		{"", "Jane - ABG - MW - 3:00pm", "", "", ""},    // no coach
		{"12", "Jane - ABG - MW - 3:00pm", "", "", ""},  // coach is not text
		{"Jane", "", "https://zoom/x", "3:00pm", ""},     // no topic
		{"Jane", "Weekly sync", "https://zoom/x", "", ""}, // no pattern nor level
	})

	if records := extract(t, models.ShapeDynamicNamed, sheet); len(records) != 0 {
		t.Errorf("Expected no records, got %+v", records)
	}
}
