package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/metrics"
	"github.com/leixerzzz/horizonventura/internal/model"
	"github.com/leixerzzz/horizonventura/internal/repository"
)

const maxReviewPageSize = 50

type CreateReviewInput struct {
	UserID   string
	Text     string
	ImageURL *string
	Rating   int
}

// ReviewItem is a review listing row with the author attached. The author's
// email is never included here.
type ReviewItem struct {
	model.Review
	User *model.UserSummary `json:"user,omitempty"`
}

type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*model.Review, error)
	List(ctx context.Context, page, limit int) (*model.Page, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, userRepo: userRepo}
}

func (s *reviewService) Create(ctx context.Context, input CreateReviewInput) (*model.Review, error) {
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

	review := &model.Review{
		UserID:   userID,
		Text:     input.Text,
		ImageURL: input.ImageURL,
		Rating:   input.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	return review, nil
}

func (s *reviewService) List(ctx context.Context, page, limit int) (*model.Page, error) {
	page, limit = clampPage(page, limit, maxReviewPageSize)

	reviews, total, err := s.reviewRepo.List(ctx, repository.ReviewListOptions{
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	items := make([]ReviewItem, 0, len(reviews))
	for _, review := range reviews {
		item := ReviewItem{Review: review}
		if review.User != nil {
			item.User = review.User.Summary(false)
		}
		item.Review.User = nil
		items = append(items, item)
	}
	return model.NewPage(page, limit, total, items), nil
}
