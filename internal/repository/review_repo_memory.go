package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]model.Review
	users   UserRepository
}

func NewMemoryReviewRepository(users UserRepository) ReviewRepository {
	return &memoryReviewRepository{
		reviews: make(map[uuid.UUID]model.Review),
		users:   users,
	}
}

func (r *memoryReviewRepository) Create(_ context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	r.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviewRepository) List(ctx context.Context, opts ReviewListOptions) ([]model.Review, int64, error) {
	r.mu.RLock()
	all := make([]model.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		all = append(all, review)
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
