package service

import (
	"context"

	"lifeplan/entities"
)

type UserService interface {
	// Login finds the user with email, creating one on first sight.
	Login(ctx context.Context, email string) (*entities.User, error)
	Get(ctx context.Context, id string) (*entities.User, error)
	// Lookup finds an existing user by email without creating one.
	Lookup(ctx context.Context, email string) (*entities.User, error)
}
