package service

import (
	"io"
	"strings"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/strictjson"
)

const MaxIndentLevel = 4

// DecodePlanPatch reads a JSON patch, rejecting unknown fields and trailing
// data, and validates it.
func DecodePlanPatch(r io.Reader) (PlanPatch, error) {
	var p PlanPatch
	if err := strictjson.Decode(r, &p); err != nil {
		return PlanPatch{}, err
	}
	return p, p.Validate()
}

// Columns lists the plan columns touched by p.
func (p PlanPatch) Columns() []string {
	var cols []string
	if p.Direction != nil {
		cols = append(cols, "direction")
	}
	if p.Reflection != nil {
		cols = append(cols, "reflection")
	}
	if p.Notes != nil {
		cols = append(cols, "notes")
	}
	if p.Tasks != nil {
		cols = append(cols, "tasks")
	}
	if p.UnfinishedTasks != nil {
		cols = append(cols, "unfinished_tasks")
	}
	if p.Habits != nil {
		cols = append(cols, "habits")
	}
	return cols
}

func (p PlanPatch) Validate() error {
	if p.Tasks != nil {
		if err := validateTasks("tasks", *p.Tasks); err != nil {
			return err
		}
	}
	if p.UnfinishedTasks != nil {
		if err := validateTasks("unfinishedTasks", *p.UnfinishedTasks); err != nil {
			return err
		}
	}
	if p.Habits != nil {
		for id := range *p.Habits {
			if strings.TrimSpace(id) == "" {
				return apperr.Invalid("habits: empty habit id")
			}
		}
	}
	return nil
}

func validateTasks(field string, tasks []entities.Task) error {
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			return apperr.Invalid("%s[%d]: id is required", field, i)
		}
		if seen[t.ID] {
			return apperr.Invalid("%s[%d]: duplicate id %q", field, i, t.ID)
		}
		seen[t.ID] = true
		if t.IndentLevel < 0 || t.IndentLevel > MaxIndentLevel {
			return apperr.Invalid("%s[%d]: indentLevel must be between 0 and %d", field, i, MaxIndentLevel)
		}
	}
	return nil
}

// Apply merges p into plan.
func (p PlanPatch) Apply(plan *entities.Plan) {
	if p.Direction != nil {
		plan.Direction = *p.Direction
	}
	if p.Reflection != nil {
		plan.Reflection = *p.Reflection
	}
	if p.Notes != nil {
		plan.Notes = *p.Notes
	}
	if p.Tasks != nil {
		plan.Tasks = cloneTasks(*p.Tasks)
	}
	if p.UnfinishedTasks != nil {
		plan.UnfinishedTasks = cloneTasks(*p.UnfinishedTasks)
	}
	if p.Habits != nil {
		h := make(map[string]bool, len(*p.Habits))
		for k, v := range *p.Habits {
			h[k] = v
		}
		plan.Habits = h
	}
}

func cloneTasks(ts []entities.Task) []entities.Task {
	return append([]entities.Task{}, ts...)
}
