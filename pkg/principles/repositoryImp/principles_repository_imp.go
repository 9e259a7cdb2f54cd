package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/principles/repository"
)

type principlesRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PrinciplesRepository { return &principlesRepo{db} }

func (r *principlesRepo) FindByUser(ctx context.Context, userID string) (*entities.Principles, error) {
	var p entities.Principles
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("principles")
	}
	if err != nil {
		return nil, fmt.Errorf("find principles: %w", err)
	}
	return &p, nil
}

func (r *principlesRepo) CreateIfAbsent(ctx context.Context, p *entities.Principles) (*entities.Principles, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(p)
	if res.Error != nil {
		return nil, fmt.Errorf("create principles: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return p, nil
	}
	return r.FindByUser(ctx, p.UserID)
}

func (r *principlesRepo) Update(ctx context.Context, p *entities.Principles, columns ...string) error {
	res := r.db.WithContext(ctx).
		Model(p).
		Where("user_id = ?", p.UserID).
		Select(columns).
		Updates(p)
	if res.Error != nil {
		return fmt.Errorf("update principles: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("principles")
	}
	return nil
}
