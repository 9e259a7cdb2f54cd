package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
	"lifeplan/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Find(ctx context.Context, userID, typ, date string) (*entities.Plan, error) {
	var p entities.Plan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND date = ?", userID, typ, date).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("plan")
	}
	if err != nil {
		return nil, fmt.Errorf("find plan %s/%s: %w", typ, date, err)
	}
	return &p, nil
}

func (r *planRepo) FindByID(ctx context.Context, id, userID string) (*entities.Plan, error) {
	var p entities.Plan
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("plan")
	}
	if err != nil {
		return nil, fmt.Errorf("find plan %s: %w", id, err)
	}
	return &p, nil
}

func (r *planRepo) ListByUser(ctx context.Context, userID string) ([]entities.Plan, error) {
	var ps []entities.Plan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&ps).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return ps, nil
}

func (r *planRepo) CreateIfAbsent(ctx context.Context, p *entities.Plan) (*entities.Plan, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(p)
	if res.Error != nil {
		return nil, fmt.Errorf("create plan: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return p, nil
	}
	// lost the race against a concurrent first read; the winner's row stands
	return r.Find(ctx, p.UserID, p.Type, p.Date)
}

func (r *planRepo) Update(ctx context.Context, p *entities.Plan, columns ...string) error {
	res := r.db.WithContext(ctx).
		Model(p).
		Where("user_id = ?", p.UserID).
		Select(columns).
		Updates(p)
	if res.Error != nil {
		return fmt.Errorf("update plan %s: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("plan")
	}
	return nil
}

func (r *planRepo) Delete(ctx context.Context, id, userID string) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Plan{}).Error
	if err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}
