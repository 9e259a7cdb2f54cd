package service

import (
	"context"

	"lifeplan/entities"
	"lifeplan/pkg/period"
)

type PlanService interface {
	GetOrCreate(ctx context.Context, userID string, ref period.Ref) (*entities.Plan, error)
	Update(ctx context.Context, planID, userID string, patch PlanPatch) (*entities.Plan, error)
	Delete(ctx context.Context, planID, userID string) error
	GetAll(ctx context.Context, userID string) ([]entities.Plan, error)
	Context(ctx context.Context, userID string, ref period.Ref) (*PlanContext, error)
}

// PlanPatch carries only the fields a client changed. Nil means untouched.
type PlanPatch struct {
	Direction       *string          `json:"direction"`
	Reflection      *string          `json:"reflection"`
	Notes           *string          `json:"notes"`
	Tasks           *[]entities.Task `json:"tasks"`
	UnfinishedTasks *[]entities.Task `json:"unfinishedTasks"`
	Habits          *map[string]bool `json:"habits"`
}

// Linked is a related period and its plan, which may not exist yet.
type Linked struct {
	Ref  period.Ref     `json:"ref"`
	Plan *entities.Plan `json:"plan"`
}

// Preview is a past plan shown with a short excerpt of its writing.
type Preview struct {
	Plan    *entities.Plan `json:"plan"`
	Excerpt string         `json:"excerpt"`
}

// PlanContext annotates a plan view with its neighbours in the hierarchy
// and in history. It is computed on read and never stored.
type PlanContext struct {
	Ref      period.Ref     `json:"ref"`
	Plan     *entities.Plan `json:"plan"`
	Parent   *Linked        `json:"parent"`
	Previous *Linked        `json:"previous"`

	// PendingFromPrevious lists the previous day's open tasks. Days do not
	// copy tasks forward, so the view cross-references them live instead.
	PendingFromPrevious []entities.Task `json:"pendingFromPrevious"`

	OnThisDay  *Preview `json:"onThisDay"`
	RandomPast *Preview `json:"randomPast"`
}
