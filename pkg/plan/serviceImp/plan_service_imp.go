package serviceImp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/carryover"
	"lifeplan/pkg/history"
	"lifeplan/pkg/logger"
	"lifeplan/pkg/period"
	planrepo "lifeplan/pkg/plan/repository"
	"lifeplan/pkg/plan/service"
	"lifeplan/pkg/render"
)

const excerptRunes = 160

type PlanSvc struct {
	repo    planrepo.PlanRepository
	sampler *history.Sampler
	now     func() time.Time
	loc     *time.Location
}

func NewPlanService(r planrepo.PlanRepository, sampler *history.Sampler, now func() time.Time, loc *time.Location) *PlanSvc {
	if loc == nil {
		loc = time.UTC
	}
	return &PlanSvc{repo: r, sampler: sampler, now: now, loc: loc}
}

var _ service.PlanService = (*PlanSvc)(nil)

func (s *PlanSvc) today() time.Time { return period.Today(s.now(), s.loc) }

func (s *PlanSvc) GetOrCreate(ctx context.Context, userID string, ref period.Ref) (*entities.Plan, error) {
	p, err := s.repo.Find(ctx, userID, string(ref.Type), ref.Date)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	// carry-over only ever runs here, on the branch that creates the plan
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	carried := carryover.Resolve(ref.Type, ref.Time(), existing)

	p = &entities.Plan{
		ID:              uuid.NewString(),
		UserID:          userID,
		Type:            string(ref.Type),
		Date:            ref.Date,
		Tasks:           []entities.Task{},
		UnfinishedTasks: carried,
		Habits:          map[string]bool{},
	}
	created, err := s.repo.CreateIfAbsent(ctx, p)
	if err != nil {
		return nil, err
	}
	if created.ID == p.ID {
		logger.Info("plan created", "user", userID, "ref", ref, "carried", len(carried))
	} else {
		logger.Debug("plan created concurrently, using stored row", "user", userID, "ref", ref)
	}
	return created, nil
}

func (s *PlanSvc) Update(ctx context.Context, planID, userID string, patch service.PlanPatch) (*entities.Plan, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, planID, userID)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	cols := append(patch.Columns(), "updated_at")
	if err := s.repo.Update(ctx, p, cols...); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, planID, userID)
}

func (s *PlanSvc) Delete(ctx context.Context, planID, userID string) error {
	return s.repo.Delete(ctx, planID, userID)
}

func (s *PlanSvc) GetAll(ctx context.Context, userID string) ([]entities.Plan, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Context resolves the neighbours of ref from one load of the user's plans.
// Missing neighbours come back with a nil plan so the client can offer to
// create them.
func (s *PlanSvc) Context(ctx context.Context, userID string, ref period.Ref) (*service.PlanContext, error) {
	plans, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	index := make(map[period.Ref]*entities.Plan, len(plans))
	for i := range plans {
		index[period.Ref{Type: period.Type(plans[i].Type), Date: plans[i].Date}] = &plans[i]
	}
	link := func(r period.Ref) *service.Linked {
		return &service.Linked{Ref: r, Plan: index[r]}
	}

	d := ref.Time()
	out := &service.PlanContext{
		Ref:                 ref,
		Plan:                index[ref],
		PendingFromPrevious: []entities.Task{},
	}
	if parent, ok := period.ParentOf(ref.Type, d); ok {
		out.Parent = link(parent)
	}

	if ref.Type != period.Day {
		if prev, ok := period.PreviousPeriodOf(ref.Type, d); ok {
			out.Previous = link(prev)
		}
		return out, nil
	}

	out.Previous = link(period.Ref{Type: period.Day, Date: period.Format(d.AddDate(0, 0, -1))})
	if out.Previous.Plan != nil {
		out.PendingFromPrevious = out.Previous.Plan.PendingTasks()
	}

	otd := history.OnThisDay(plans, d)
	out.OnThisDay = preview(otd)
	if s.sampler != nil {
		out.RandomPast = preview(s.sampler.RandomPast(plans, s.today(), otd, out.Plan))
	}
	return out, nil
}

func preview(p *entities.Plan) *service.Preview {
	if p == nil {
		return nil
	}
	return &service.Preview{Plan: p, Excerpt: render.Excerpt(previewSource(p), excerptRunes)}
}

// previewSource picks the first non-empty piece of writing on p, falling
// back to its task list.
func previewSource(p *entities.Plan) string {
	for _, s := range []string{p.Notes, p.Direction, p.Reflection} {
		if s != "" {
			return s
		}
	}
	var md string
	for _, t := range append(append([]entities.Task{}, p.UnfinishedTasks...), p.Tasks...) {
		md += "- " + t.Text + "\n"
	}
	return md
}
