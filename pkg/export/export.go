// Package export writes a user's journal to an xlsx workbook.
package export

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"lifeplan/entities"
)

const (
	tasksSheet       = "Tasks"
	principlesSheet  = "Principles"
	defaultSheetName = "Sheet1"
)

// sheetOrder lists plan types coarsest first, one sheet each.
var sheetOrder = []struct {
	typ, sheet string
}{
	{entities.PlanYear, "Year"},
	{entities.PlanMonth, "Month"},
	{entities.PlanWeek, "Week"},
	{entities.PlanDay, "Day"},
}

var (
	planHeader = []any{"Date", "Direction", "Reflection", "Notes", "Tasks done", "Tasks total", "Carried", "Habits done"}
	taskHeader = []any{"Type", "Date", "List", "Text", "Completed", "Indent"}
)

// Workbook builds the export. Plans are grouped by type and sorted by date.
// Markdown fields are written verbatim; a field longer than one cell can
// hold fails the export rather than being cut.
func Workbook(pr *entities.Principles, plans []entities.Plan) (*excelize.File, error) {
	f := excelize.NewFile()

	byType := map[string][]entities.Plan{}
	for _, p := range plans {
		byType[p.Type] = append(byType[p.Type], p)
	}

	for _, s := range sheetOrder {
		if err := newSheet(f, s.sheet, planHeader); err != nil {
			return nil, err
		}
		rows := byType[s.typ]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
		for i, p := range rows {
			row, err := planRow(p)
			if err != nil {
				return nil, err
			}
			if err := writeRow(f, s.sheet, i+2, row); err != nil {
				return nil, err
			}
		}
	}

	if err := newSheet(f, tasksSheet, taskHeader); err != nil {
		return nil, err
	}
	next := 2
	for _, s := range sheetOrder {
		for _, p := range byType[s.typ] {
			var err error
			if next, err = writeTasks(f, next, p); err != nil {
				return nil, err
			}
		}
	}

	if err := writePrinciples(f, pr); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet(defaultSheetName); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex("Day"); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func newSheet(f *excelize.File, name string, header []any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	if err := writeRow(f, name, 1, header); err != nil {
		return err
	}
	if err := f.SetPanes(name, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze %s: %w", name, err)
	}
	return nil
}

// fitCell rejects text that excelize would otherwise truncate silently.
func fitCell(what, text string) (string, error) {
	if n := utf8.RuneCountInString(text); n > excelize.TotalCellChars {
		return "", fmt.Errorf("%s: %d characters exceeds the %d a cell holds", what, n, excelize.TotalCellChars)
	}
	return text, nil
}

func planRow(p entities.Plan) ([]any, error) {
	done, total := 0, 0
	for _, t := range append(append([]entities.Task{}, p.UnfinishedTasks...), p.Tasks...) {
		total++
		if t.Completed {
			done++
		}
	}
	habits := 0
	for _, v := range p.Habits {
		if v {
			habits++
		}
	}
	row := []any{p.Date}
	for _, field := range []struct{ name, text string }{
		{"direction", p.Direction},
		{"reflection", p.Reflection},
		{"notes", p.Notes},
	} {
		text, err := fitCell(p.Type+" "+p.Date+" "+field.name, field.text)
		if err != nil {
			return nil, err
		}
		row = append(row, text)
	}
	return append(row, done, total, len(p.UnfinishedTasks), habits), nil
}

// writeTasks lists every task of p on the Tasks sheet from row onwards and
// returns the next free row.
func writeTasks(f *excelize.File, row int, p entities.Plan) (int, error) {
	for _, list := range []struct {
		name  string
		tasks []entities.Task
	}{
		{"unfinishedTasks", p.UnfinishedTasks},
		{"tasks", p.Tasks},
	} {
		for _, t := range list.tasks {
			text, err := fitCell(p.Type+" "+p.Date+" "+list.name, t.Text)
			if err != nil {
				return row, err
			}
			if err := writeRow(f, tasksSheet, row, []any{p.Type, p.Date, list.name, text, t.Completed, t.IndentLevel}); err != nil {
				return row, err
			}
			row++
		}
	}
	return row, nil
}

func writePrinciples(f *excelize.File, pr *entities.Principles) error {
	if _, err := f.NewSheet(principlesSheet); err != nil {
		return fmt.Errorf("sheet %s: %w", principlesSheet, err)
	}
	if pr == nil {
		return nil
	}
	content, err := fitCell("principles content", pr.Content)
	if err != nil {
		return err
	}
	if err := writeRow(f, principlesSheet, 1, []any{"Content", content}); err != nil {
		return err
	}
	if err := writeRow(f, principlesSheet, 3, []any{"Habit", "Created"}); err != nil {
		return err
	}
	for i, d := range pr.HabitDefinitions {
		if err := writeRow(f, principlesSheet, i+4, []any{d.Text, d.CreatedAt}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
