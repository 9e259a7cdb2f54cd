package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	repo "lifeplan/pkg/principles/repository"
	"lifeplan/pkg/principles/service"
)

type principlesSvc struct {
	r   repo.PrinciplesRepository
	now func() time.Time
}

func NewPrinciplesService(r repo.PrinciplesRepository, now func() time.Time) service.PrinciplesService {
	return &principlesSvc{r: r, now: now}
}

func (s *principlesSvc) Get(ctx context.Context, userID string) (*entities.Principles, error) {
	p, err := s.r.FindByUser(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	return s.r.CreateIfAbsent(ctx, &entities.Principles{
		ID:               uuid.NewString(),
		UserID:           userID,
		Content:          entities.DefaultPrinciples,
		HabitDefinitions: []entities.HabitDefinition{},
	})
}

func (s *principlesSvc) Update(ctx context.Context, userID string, patch service.PrinciplesPatch) (*entities.Principles, error) {
	cur, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cols := []string{"updated_at"}
	if patch.Content != nil {
		cur.Content = *patch.Content
		cols = append(cols, "content")
	}
	if patch.HabitDefinitions != nil {
		defs, err := s.mergeHabits(cur.HabitDefinitions, *patch.HabitDefinitions)
		if err != nil {
			return nil, err
		}
		cur.HabitDefinitions = defs
		cols = append(cols, "habit_definitions")
	}
	if err := s.r.Update(ctx, cur, cols...); err != nil {
		return nil, err
	}
	return s.r.FindByUser(ctx, userID)
}

// mergeHabits validates an incoming definition list against the stored one.
// Definitions are append-only: every stored id must still be present, and
// only its text may change. New entries get an id and creation time when
// the client left them blank.
func (s *principlesSvc) mergeHabits(stored, incoming []entities.HabitDefinition) ([]entities.HabitDefinition, error) {
	created := make(map[string]string, len(stored))
	for _, d := range stored {
		created[d.ID] = d.CreatedAt
	}
	out := make([]entities.HabitDefinition, 0, len(incoming))
	seen := make(map[string]bool, len(incoming))
	for i, d := range incoming {
		d.Text = strings.TrimSpace(d.Text)
		if d.Text == "" {
			return nil, apperr.Invalid("habitDefinitions[%d]: text is required", i)
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		if seen[d.ID] {
			return nil, apperr.Invalid("habitDefinitions[%d]: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = true
		if at, ok := created[d.ID]; ok {
			d.CreatedAt = at
		} else if d.CreatedAt == "" {
			d.CreatedAt = s.now().UTC().Format(time.RFC3339)
		}
		out = append(out, d)
	}
	for _, d := range stored {
		if !seen[d.ID] {
			return nil, apperr.Invalid("habit %q cannot be removed", d.Text)
		}
	}
	return out, nil
}
