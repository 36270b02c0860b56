package coursesched

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

type fixtureSheet struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves the given sheets, in order, to a temporary xlsx file.
func writeWorkbook(t *testing.T, sheets ...fixtureSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("SetSheetName failed: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
		for r, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			values := row
			if err := f.SetSheetRow(s.name, cell, &values); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func dynamicSheet() fixtureSheet {
	return fixtureSheet{
		name: "Dynamic Schedule",
		rows: [][]interface{}{
			{"Coach", "Topic ", "Zoom Link", "TIME (France)"},
			{"Jane", "Jane - ABG - MW - 3:00pm", "https://zoom/x", "3:00pm"},
		},
	}
}

func fixedSheet() fixtureSheet {
	return fixtureSheet{
		name: "Fix Schedule",
		rows: [][]interface{}{
			{"Course", "Coach", "DAY", "TIME (France)", "TELEGRAM GROUP ID"},
			{"Conversation club", "Salma", "Samedi", "2:00pm", "-1001234567890"},
		},
	}
}

func freeGridSheet() fixtureSheet {
	return fixtureSheet{
		name: "Coaches Schedule",
		rows: [][]interface{}{
			{"", "", "Group ID"},
			{"Mina", "mina@example.com", "", "Mina - BBG - TT"},
		},
	}
}
