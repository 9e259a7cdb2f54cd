// Package carryover decides which open tasks a newly created plan inherits
// from the period before it.
package carryover

import (
	"time"

	"github.com/google/uuid"

	"lifeplan/entities"
	"lifeplan/pkg/period"
)

// Resolve returns the unfinishedTasks list for a plan of type t at the
// canonical date d, given the user's existing plans.
//
// Only weeks carry over. Days show yesterday's open tasks by cross-reference
// instead (see plan context), months and years start empty.
func Resolve(t period.Type, d time.Time, existing []entities.Plan) []entities.Task {
	if t != period.Week {
		return []entities.Task{}
	}
	prev, _ := period.PreviousPeriodOf(t, d)
	for i := range existing {
		p := &existing[i]
		if p.Type == string(prev.Type) && p.Date == prev.Date {
			return copyPending(p.PendingTasks())
		}
	}
	return []entities.Task{}
}

// copyPending gives every task a fresh id so edits to the copy never reach
// the source plan.
func copyPending(src []entities.Task) []entities.Task {
	out := make([]entities.Task, 0, len(src))
	for _, t := range src {
		t.ID = uuid.NewString()
		out = append(out, t)
	}
	return out
}
