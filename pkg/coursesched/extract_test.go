package coursesched

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/output"
)

func TestExtractDynamicScenario(t *testing.T) {
	path := writeWorkbook(t, dynamicSheet())

	records, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d: %+v", len(records), records)
	}
	for i, day := range []string{"Monday", "Wednesday"} {
		r := records[i]
		if r.DayOfWeek != day {
			t.Errorf("record %d day = %q, expected %q", i, r.DayOfWeek, day)
		}
		if r.Level != "ABG" || r.Schedule != "MW" || r.Time != "3:00pm" || r.ZoomLink != "https://zoom/x" {
			t.Errorf("record %d = %+v", i, r)
		}
	}
}

func TestExtractFixedScenario(t *testing.T) {
	path := writeWorkbook(t, fixedSheet())

	records, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.DayOfWeek != "Saturday" || r.Schedule != "FS" || r.Level != "ABG" {
		t.Errorf("record = %+v", r)
	}
	if r.TelegramGroup != "-1001234567890" {
		t.Errorf("TelegramGroup = %q", r.TelegramGroup)
	}
}

func TestExtractFreeGridStrict(t *testing.T) {
	path := writeWorkbook(t, freeGridSheet())

	records, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records from a cell without time, got %+v", records)
	}
}

func TestExtractKeepsNumberLikeText(t *testing.T) {
	dynamic := fixtureSheet{
		name: "Dynamic Schedule",
		rows: [][]interface{}{
			{"Coach", "Topic", "Zoom Link", "TIME (France)"},
			{"Nan", "Nan - ABG - MW - 3:00pm", "", "3:00pm"},
			{"Jane", "Jane - ABG - TT", "", "0900"},
			{"Inf", "Inf - IG - FS - 5:00pm", "", "5:00pm"},
		},
	}
	grid := fixtureSheet{
		name: "Coaches Schedule",
		rows: [][]interface{}{
			{"", "", "Group ID"},
			{"Nan", "nan@example.com", "+33612345678", "Nan - BBG - TT - 3:00pm"},
		},
	}
	path := writeWorkbook(t, dynamic, grid)

	records, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	var got []string
	for _, r := range records {
		got = append(got, r.ProfessorName+"/"+r.DayOfWeek+"/"+r.Time+"/"+r.TelegramGroup)
	}
	expected := []string{
		"Nan/Monday/3:00pm/",
		"Nan/Wednesday/3:00pm/",
		"Jane/Tuesday/0900/",
		"Jane/Thursday/0900/",
		"Inf/Friday/5:00pm/",
		"Inf/Saturday/5:00pm/",
		"Nan/Tuesday/3:00pm/+33612345678",
		"Nan/Thursday/3:00pm/+33612345678",
	}
	if len(got) != len(expected) {
		t.Fatalf("records = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("record %d = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestExtractOrderAcrossSheets(t *testing.T) {
	path := writeWorkbook(t, fixedSheet(), fixtureSheet{name: "Notes", rows: [][]interface{}{{"hello"}}}, dynamicSheet())

	records, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	var got []string
	for _, r := range records {
		got = append(got, r.ScheduleType+"/"+r.DayOfWeek)
	}
	expected := []string{"fixed/Saturday", "dynamic/Monday", "dynamic/Wednesday"}
	if len(got) != len(expected) {
		t.Fatalf("records = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("records = %v, expected %v", got, expected)
			break
		}
	}
}

func TestExtractSkipsInvalidSheetWhenAnotherIsValid(t *testing.T) {
	broken := fixtureSheet{
		name: "Broken Schedule",
		rows: [][]interface{}{
			{"Name", "Email", "Notes"},
			{"Jane", "jane@example.com", "Jane - ABG - MW - 3:00pm"},
		},
	}
	path := writeWorkbook(t, broken, dynamicSheet())

	records, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records from the valid sheet, got %d", len(records))
	}
}

func TestExtractNoValidSheets(t *testing.T) {
	broken := fixtureSheet{
		name: "Broken Schedule",
		rows: [][]interface{}{
			{"Name", "Email"},
			{"Jane", "jane@example.com"},
		},
	}
	path := writeWorkbook(t, fixtureSheet{name: "Notes", rows: [][]interface{}{{"Coach"}}}, broken)

	_, err := Extract(path, DefaultOptions())
	if !errors.Is(err, ErrNoValidSheets) {
		t.Fatalf("Expected ErrNoValidSheets, got %v", err)
	}
	var perr *ProcessingError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ProcessingError, got %T", err)
	}
	if perr.Stage != "load" {
		t.Errorf("Stage = %q, expected load", perr.Stage)
	}
}

func TestExtractSheetMarkerIsCaseSensitive(t *testing.T) {
	s := dynamicSheet()
	s.name = "dynamic schedule"
	path := writeWorkbook(t, s)

	if _, err := Extract(path, DefaultOptions()); !errors.Is(err, ErrNoValidSheets) {
		t.Errorf("Expected ErrNoValidSheets, got %v", err)
	}
}

func TestExtractFileNotFound(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestExtractInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Extract(path, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	path := writeWorkbook(t, dynamicSheet(), fixedSheet())

	run := func() []byte {
		records, err := Extract(path, DefaultOptions())
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		data, err := output.ToJSON(records, true)
		if err != nil {
			t.Fatalf("ToJSON failed: %v", err)
		}
		return data
	}

	if first, second := run(), run(); !bytes.Equal(first, second) {
		t.Errorf("outputs differ:\n%s\n---\n%s", first, second)
	}
}

func TestExtractWorkbookUnknownShape(t *testing.T) {
	wb := &models.Workbook{Sheets: []models.RawSheet{{Name: "Odd Schedule", Shape: "spiral"}}}

	_, err := ExtractWorkbook(wb, DefaultOptions())
	var eerr *ExtractionError
	if !errors.As(err, &eerr) || eerr.SheetName != "Odd Schedule" {
		t.Errorf("Expected ExtractionError for Odd Schedule, got %v", err)
	}
}
