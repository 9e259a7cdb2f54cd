package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"lifeplan/entities"
)

func TestWorkbook(t *testing.T) {
	pr := &entities.Principles{
		Content:          "# Principles",
		HabitDefinitions: []entities.HabitDefinition{{ID: "h1", Text: "Run", CreatedAt: "2024-01-01T00:00:00Z"}},
	}
	plans := []entities.Plan{
		{Type: entities.PlanDay, Date: "2024-03-02", Notes: "**second**",
			Tasks:  []entities.Task{{ID: "a", Text: "A", Completed: true}, {ID: "b", Text: "B"}},
			Habits: map[string]bool{"h1": true}},
		{Type: entities.PlanDay, Date: "2024-03-01", Notes: "first",
			UnfinishedTasks: []entities.Task{{ID: "c", Text: "C"}}},
		{Type: entities.PlanYear, Date: "2024-01-01", Direction: "Grow"},
	}

	f, err := Workbook(pr, plans)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer back.Close()

	want := []string{"Year", "Month", "Week", "Day", "Tasks", "Principles"}
	got := back.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", got, want)
		}
	}

	rows, err := back.GetRows("Day")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("day rows = %d, want header + 2", len(rows))
	}
	if rows[1][0] != "2024-03-01" || rows[2][0] != "2024-03-02" {
		t.Errorf("day rows not sorted: %v", rows)
	}
	// Date, Direction, Reflection, Notes, done, total, carried, habits
	if rows[2][3] != "**second**" || rows[2][4] != "1" || rows[2][5] != "2" || rows[2][7] != "1" {
		t.Errorf("row = %v", rows[2])
	}
	if rows[1][6] != "1" {
		t.Errorf("carried = %q, want 1", rows[1][6])
	}

	pRows, err := back.GetRows("Principles")
	if err != nil {
		t.Fatalf("GetRows principles: %v", err)
	}
	if len(pRows) < 4 || pRows[3][0] != "Run" {
		t.Errorf("principles rows = %v", pRows)
	}
}

func roundTrip(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	back, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { back.Close() })
	return back
}

func TestWorkbookKeepsWritingIntact(t *testing.T) {
	notes := "# Long day\n\n" + strings.Repeat("word ", 600) + "\n\n- first item\n  - nested item\n"
	plans := []entities.Plan{{
		Type: entities.PlanWeek, Date: "2024-03-11",
		Direction:       "**Ship** it",
		Notes:           notes,
		UnfinishedTasks: []entities.Task{{ID: "c", Text: "carried over"}},
		Tasks: []entities.Task{
			{ID: "a", Text: "parent", Completed: true},
			{ID: "b", Text: "child with `code`", IndentLevel: 2},
		},
	}}
	f, err := Workbook(&entities.Principles{Content: "# P"}, plans)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	back := roundTrip(t, f)

	got, err := back.GetCellValue("Week", "D2")
	if err != nil {
		t.Fatal(err)
	}
	if got != notes {
		t.Errorf("notes changed: %d runes in, %d out", len([]rune(notes)), len([]rune(got)))
	}
	if dir, _ := back.GetCellValue("Week", "B2"); dir != "**Ship** it" {
		t.Errorf("direction = %q", dir)
	}

	rows, err := back.GetRows("Tasks")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Type", "Date", "List", "Text", "Completed", "Indent"},
		{"week", "2024-03-11", "unfinishedTasks", "carried over", "FALSE", "0"},
		{"week", "2024-03-11", "tasks", "parent", "TRUE", "0"},
		{"week", "2024-03-11", "tasks", "child with `code`", "FALSE", "2"},
	}
	if len(rows) != len(want) {
		t.Fatalf("task rows = %v", rows)
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestWorkbookRejectsOversizedCell(t *testing.T) {
	plans := []entities.Plan{{
		Type: entities.PlanDay, Date: "2024-03-15",
		Notes: strings.Repeat("x", excelize.TotalCellChars+1),
	}}
	if _, err := Workbook(nil, plans); err == nil || !strings.Contains(err.Error(), "day 2024-03-15 notes") {
		t.Fatalf("err = %v, want oversized notes error", err)
	}

	plans[0].Notes = strings.Repeat("x", excelize.TotalCellChars)
	f, err := Workbook(nil, plans)
	if err != nil {
		t.Fatalf("cell at the limit: %v", err)
	}
	got, _ := roundTrip(t, f).GetCellValue("Day", "D2")
	if len(got) != excelize.TotalCellChars {
		t.Errorf("notes = %d chars, want %d", len(got), excelize.TotalCellChars)
	}
}
