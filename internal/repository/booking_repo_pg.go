package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type pgBookingRepository struct {
	db *gorm.DB
}

func NewPGBookingRepository(db *gorm.DB) BookingRepository {
	return &pgBookingRepository{db: db}
}

func (r *pgBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *pgBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &booking, nil
}

func (r *pgBookingRepository) List(ctx context.Context, opts BookingListOptions) ([]model.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Booking{})
	if opts.UserID != nil {
		query = query.Where("user_id = ?", *opts.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []model.Booking
	if err := query.
		Preload("User").
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *pgBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
