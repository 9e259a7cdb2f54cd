package carryover

import (
	"testing"
	"time"

	"lifeplan/entities"
	"lifeplan/pkg/period"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := period.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestResolveWeekCarriesPendingTasks(t *testing.T) {
	prev := entities.Plan{
		ID: "w1", Type: entities.PlanWeek, Date: "2024-03-04",
		UnfinishedTasks: []entities.Task{
			{ID: "u1", Text: "inherited open"},
			{ID: "u2", Text: "inherited done", Completed: true},
		},
		Tasks: []entities.Task{
			{ID: "t1", Text: "new open", IndentLevel: 1},
			{ID: "t2", Text: "new done", Completed: true},
			{ID: "t3", Text: "another open"},
		},
	}
	// a day plan on the same date must be ignored
	noise := entities.Plan{ID: "d1", Type: entities.PlanDay, Date: "2024-03-04",
		Tasks: []entities.Task{{ID: "x", Text: "day task"}}}

	got := Resolve(period.Week, mustDate(t, "2024-03-11"), []entities.Plan{noise, prev})

	want := []string{"inherited open", "new open", "another open"}
	if len(got) != len(want) {
		t.Fatalf("carried %d tasks, want %d: %+v", len(got), len(want), got)
	}
	sourceIDs := map[string]bool{"u1": true, "u2": true, "t1": true, "t2": true, "t3": true}
	seen := map[string]bool{}
	for i, task := range got {
		if task.Text != want[i] {
			t.Errorf("task[%d].Text = %q, want %q", i, task.Text, want[i])
		}
		if task.Completed {
			t.Errorf("task[%d] carried as completed", i)
		}
		if sourceIDs[task.ID] || task.ID == "" {
			t.Errorf("task[%d] kept id %q", i, task.ID)
		}
		if seen[task.ID] {
			t.Errorf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
	}
	if got[1].IndentLevel != 1 {
		t.Errorf("indent level lost: %+v", got[1])
	}
	if prev.Tasks[0].ID != "t1" {
		t.Errorf("source plan mutated: %+v", prev.Tasks[0])
	}
}

func TestResolveWeekWithoutPrevious(t *testing.T) {
	twoWeeksBack := entities.Plan{Type: entities.PlanWeek, Date: "2024-02-26",
		Tasks: []entities.Task{{ID: "a", Text: "stale"}}}
	got := Resolve(period.Week, mustDate(t, "2024-03-11"), []entities.Plan{twoWeeksBack})
	if got == nil || len(got) != 0 {
		t.Errorf("got %+v, want empty non-nil", got)
	}
}

func TestResolveOtherTypesNeverCarry(t *testing.T) {
	plans := []entities.Plan{
		{Type: entities.PlanDay, Date: "2024-01-01", Tasks: []entities.Task{{ID: "a", Text: "A"}}},
		{Type: entities.PlanMonth, Date: "2023-12-01", Tasks: []entities.Task{{ID: "b", Text: "B"}}},
		{Type: entities.PlanYear, Date: "2023-01-01", Tasks: []entities.Task{{ID: "c", Text: "C"}}},
	}
	cases := []struct {
		typ period.Type
		d   string
	}{
		{period.Day, "2024-01-02"},
		{period.Month, "2024-01-01"},
		{period.Year, "2024-01-01"},
	}
	for _, c := range cases {
		if got := Resolve(c.typ, mustDate(t, c.d), plans); len(got) != 0 {
			t.Errorf("Resolve(%s) carried %+v", c.typ, got)
		}
	}
}
