package repository

import (
	"context"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type ReviewListOptions struct {
	Offset int
	Limit  int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	// List returns a newest-first page of reviews with User populated, plus
	// the total row count.
	List(ctx context.Context, opts ReviewListOptions) ([]model.Review, int64, error)
}
