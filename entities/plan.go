package entities

import (
	"time"

	"gorm.io/gorm"
)

// Plan types, finest last.
const (
	PlanYear  = "year"
	PlanMonth = "month"
	PlanWeek  = "week"
	PlanDay   = "day"
)

type Task struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	IndentLevel int    `json:"indentLevel,omitempty"`
}

// Plan is one journal document. Date is the canonical period start as
// YYYY-MM-DD; at most one row exists per (user, type, date).
type Plan struct {
	ID     string `gorm:"primaryKey;type:text" json:"id"`
	UserID string `gorm:"not null;uniqueIndex:idx_plans_user_type_date" json:"userId"`
	Type   string `gorm:"size:10;not null;uniqueIndex:idx_plans_user_type_date" json:"type"`
	Date   string `gorm:"size:10;not null;uniqueIndex:idx_plans_user_type_date" json:"date"`

	Direction  string `json:"direction"`
	Reflection string `json:"reflection"`
	Notes      string `json:"notes"`

	Tasks           []Task          `gorm:"serializer:json;not null;default:'[]'" json:"tasks"`
	UnfinishedTasks []Task          `gorm:"serializer:json;not null;default:'[]'" json:"unfinishedTasks"`
	Habits          map[string]bool `gorm:"serializer:json;not null;default:'{}'" json:"habits"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AfterFind keeps the JSON columns non-nil so responses carry [] and {}.
func (p *Plan) AfterFind(*gorm.DB) error {
	p.fillEmpty()
	return nil
}

func (p *Plan) fillEmpty() {
	if p.Tasks == nil {
		p.Tasks = []Task{}
	}
	if p.UnfinishedTasks == nil {
		p.UnfinishedTasks = []Task{}
	}
	if p.Habits == nil {
		p.Habits = map[string]bool{}
	}
}

// BeforeSave applies the same defaults on the write path.
func (p *Plan) BeforeSave(*gorm.DB) error {
	p.fillEmpty()
	return nil
}

// PendingTasks returns the incomplete tasks of p, inherited ones first.
func (p *Plan) PendingTasks() []Task {
	out := []Task{}
	for _, t := range p.UnfinishedTasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range p.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
