package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type pgReviewRepository struct {
	db *gorm.DB
}

func NewPGReviewRepository(db *gorm.DB) ReviewRepository {
	return &pgReviewRepository{db: db}
}

func (r *pgReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *pgReviewRepository) List(ctx context.Context, opts ReviewListOptions) ([]model.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
