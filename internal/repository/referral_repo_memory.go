package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/model"
)

type memoryReferralRepository struct {
	mu        sync.Mutex
	referrals map[uuid.UUID]model.Referral
	byCode    map[string]uuid.UUID
}

func NewMemoryReferralRepository() ReferralRepository {
	return &memoryReferralRepository{
		referrals: make(map[uuid.UUID]model.Referral),
		byCode:    make(map[string]uuid.UUID),
	}
}

func (r *memoryReferralRepository) Create(_ context.Context, referral *model.Referral) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCode[referral.Code]; taken {
		return ErrDuplicateCode
	}

	if referral.ID == uuid.Nil {
		referral.ID = uuid.New()
	}
	referral.CreatedAt = time.Now()
	r.referrals[referral.ID] = *referral
	r.byCode[referral.Code] = referral.ID
	return nil
}

func (r *memoryReferralRepository) GetByCode(_ context.Context, code string) (*model.Referral, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	referral := r.referrals[id]
	return &referral, nil
}

func (r *memoryReferralRepository) MarkUsed(_ context.Context, id, userID uuid.UUID) (*model.Referral, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	referral, ok := r.referrals[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Same guard as the conditional update in the Postgres implementation.
	if referral.UsedByID != nil {
		return nil, ErrAlreadyUsed
	}

	used := userID
	referral.UsedByID = &used
	r.referrals[id] = referral
	return &referral, nil
}

func (r *memoryReferralRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Referral, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var referrals []model.Referral
	for _, referral := range r.referrals {
		if referral.OwnerID == ownerID {
			referrals = append(referrals, referral)
		}
	}
	sort.Slice(referrals, func(i, j int) bool {
		return referrals[i].CreatedAt.After(referrals[j].CreatedAt)
	})
	return referrals, nil
}
