package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]model.Booking
	users    UserRepository
}

// NewMemoryBookingRepository needs the user repository to populate the User
// association the way the Postgres implementation does with Preload.
func NewMemoryBookingRepository(users UserRepository) BookingRepository {
	return &memoryBookingRepository{
		bookings: make(map[uuid.UUID]model.Booking),
		users:    users,
	}
}

func (r *memoryBookingRepository) Create(_ context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (r *memoryBookingRepository) List(ctx context.Context, opts BookingListOptions) ([]model.Booking, int64, error) {
	r.mu.RLock()
	var all []model.Booking
	for _, booking := range r.bookings {
		if opts.UserID != nil && booking.UserID != *opts.UserID {
			continue
		}
		all = append(all, booking)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	page := paginate(all, opts.Offset, opts.Limit)
	for i := range page {
		if user, err := r.users.GetByID(ctx, page[i].UserID); err == nil {
			page[i].User = user
		}
	}
	return page, total, nil
}

func (r *memoryBookingRepository) UpdateStatus(_ context.Context, id uuid.UUID, status model.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	r.bookings[id] = booking
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
