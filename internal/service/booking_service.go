package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/metrics"
	"github.com/leixerzzz/horizonventura/internal/model"
	"github.com/leixerzzz/horizonventura/internal/repository"
)

const (
	defaultPageLimit   = 20
	maxBookingPageSize = 100
)

type CreateBookingInput struct {
	UserID      string
	Destination string
	Service     string
	StartDate   time.Time
	EndDate     *time.Time
	Quantity    int
	TotalPrice  float64
}

// BookingItem is a booking listing row with the owning user attached.
type BookingItem struct {
	model.Booking
	User *model.UserSummary `json:"user,omitempty"`
}

type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*model.Booking, error)
	List(ctx context.Context, page, limit int, userID string) (*model.Page, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, userRepo: userRepo}
}

func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*model.Booking, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	booking := &model.Booking{
		UserID:      userID,
		Destination: input.Destination,
		Service:     input.Service,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Quantity:    input.Quantity,
		TotalPrice:  input.TotalPrice,
		Status:      model.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, page, limit int, userID string) (*model.Page, error) {
	page, limit = clampPage(page, limit, maxBookingPageSize)

	opts := repository.BookingListOptions{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			// Unknown filter matches nothing, same as an unknown user id.
			return model.NewPage(page, limit, 0, []BookingItem{}), nil
		}
		opts.UserID = &id
	}

	bookings, total, err := s.bookingRepo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	items := make([]BookingItem, 0, len(bookings))
	for _, booking := range bookings {
		item := BookingItem{Booking: booking}
		if booking.User != nil {
			item.User = booking.User.Summary(true)
		}
		item.Booking.User = nil
		items = append(items, item)
	}
	return model.NewPage(page, limit, total, items), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	return booking, nil
}

func clampPage(page, limit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
