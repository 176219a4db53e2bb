package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/model"
)

// BookingListOptions narrows and pages a booking listing. Offset/Limit are
// assumed already clamped by the caller.
type BookingListOptions struct {
	UserID *uuid.UUID
	Offset int
	Limit  int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// List returns a newest-first page of bookings with User populated, plus
	// the total row count for the filter.
	List(ctx context.Context, opts BookingListOptions) ([]model.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error
}
