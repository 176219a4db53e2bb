package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type ReferralRepository interface {
	// Create persists a new referral. A collision on the unique code index is
	// reported as ErrDuplicateCode; all other failures propagate untagged.
	Create(ctx context.Context, referral *model.Referral) error
	GetByCode(ctx context.Context, code string) (*model.Referral, error)
	// MarkUsed atomically transitions used_by_id from null to userID. When the
	// row was already redeemed (including a lost race between two concurrent
	// redemptions) it returns ErrAlreadyUsed.
	MarkUsed(ctx context.Context, id, userID uuid.UUID) (*model.Referral, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Referral, error)
}
