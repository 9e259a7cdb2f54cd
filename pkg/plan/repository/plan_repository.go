package repository

import (
	"context"

	"lifeplan/entities"
)

type PlanRepository interface {
	// Find returns apperr.ErrNotFound when no plan matches.
	Find(ctx context.Context, userID, typ, date string) (*entities.Plan, error)
	FindByID(ctx context.Context, id, userID string) (*entities.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Plan, error)
	// CreateIfAbsent inserts p unless (user, type, date) is already taken,
	// in which case the stored plan is returned instead.
	CreateIfAbsent(ctx context.Context, p *entities.Plan) (*entities.Plan, error)
	// Update writes only the named columns of p, scoped to p.UserID.
	Update(ctx context.Context, p *entities.Plan, columns ...string) error
	Delete(ctx context.Context, id, userID string) error
}
