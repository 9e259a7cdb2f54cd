package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepo) first(ctx context.Context, query string, arg any) (*entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
