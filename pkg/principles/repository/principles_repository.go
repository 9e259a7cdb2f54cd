package repository

import (
	"context"

	"lifeplan/entities"
)

type PrinciplesRepository interface {
	// CreateIfAbsent inserts p unless the user already has principles,
	// in which case the stored row is returned instead.
	CreateIfAbsent(ctx context.Context, p *entities.Principles) (*entities.Principles, error)
	FindByUser(ctx context.Context, userID string) (*entities.Principles, error)
	Update(ctx context.Context, p *entities.Principles, columns ...string) error
}
