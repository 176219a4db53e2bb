package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type pgReferralRepository struct {
	db *gorm.DB
}

func NewPGReferralRepository(db *gorm.DB) ReferralRepository {
	return &pgReferralRepository{db: db}
}

func (r *pgReferralRepository) Create(ctx context.Context, referral *model.Referral) error {
	if err := r.db.WithContext(ctx).Create(referral).Error; err != nil {
		if isUniqueViolation(err, "code") {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *pgReferralRepository) GetByCode(ctx context.Context, code string) (*model.Referral, error) {
	var referral model.Referral
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&referral).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &referral, nil
}

func (r *pgReferralRepository) MarkUsed(ctx context.Context, id, userID uuid.UUID) (*model.Referral, error) {
	// Conditional single-row update: only one of two racing redemptions can
	// win the null -> value transition; the loser sees zero rows affected.
	res := r.db.WithContext(ctx).
		Model(&model.Referral{}).
		Where("id = ? AND used_by_id IS NULL", id).
		Update("used_by_id", userID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyUsed
	}

	var referral model.Referral
	if err := r.db.WithContext(ctx).First(&referral, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &referral, nil
}

func (r *pgReferralRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Referral, error) {
	var referrals []model.Referral
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&referrals).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}
