package habit

import (
	"time"

	"lifeplan/entities"
	"lifeplan/pkg/period"
)

type Cell struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// BuildMatrix lays out the trailing windowDays days ending at today, oldest
// first, and marks each habit done on the days whose day plan says so.
// Every habit gets a row of exactly windowDays cells on the same axis.
func BuildMatrix(defs []entities.HabitDefinition, plans []entities.Plan, windowDays int, today time.Time) map[string][]Cell {
	out := make(map[string][]Cell, len(defs))
	if windowDays <= 0 {
		for _, d := range defs {
			out[d.ID] = []Cell{}
		}
		return out
	}

	byDate := make(map[string]*entities.Plan)
	for i := range plans {
		if plans[i].Type == entities.PlanDay {
			byDate[plans[i].Date] = &plans[i]
		}
	}

	end := period.Normalize(period.Day, today)
	axis := make([]string, windowDays)
	for i := range axis {
		axis[i] = period.Format(end.AddDate(0, 0, i-(windowDays-1)))
	}

	for _, def := range defs {
		row := make([]Cell, windowDays)
		for i, date := range axis {
			row[i] = Cell{Date: date}
			if p := byDate[date]; p != nil && p.Habits[def.ID] {
				row[i].Completed = true
			}
		}
		out[def.ID] = row
	}
	return out
}

// Streak reports the run of completed cells ending at the last cell and the
// longest run anywhere in the row.
func Streak(row []Cell) (current, longest int) {
	run := 0
	for _, c := range row {
		if c.Completed {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return run, longest
}
