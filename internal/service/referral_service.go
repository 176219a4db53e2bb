package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/metrics"
	"github.com/leixerzzz/horizonventura/internal/model"
	"github.com/leixerzzz/horizonventura/internal/repository"
)

const (
	referralCodeLength = 8
	maxCodeAttempts    = 5
)

type ReferralService interface {
	Generate(ctx context.Context, userID string) (*model.Referral, error)
	Redeem(ctx context.Context, code, userID string) (*model.Referral, error)
	ListByOwner(ctx context.Context, userID string) ([]model.Referral, error)
}

type referralService struct {
	referralRepo repository.ReferralRepository
	userRepo     repository.UserRepository

	// newCode is swapped out in tests to force collisions.
	newCode func() (string, error)
}

func NewReferralService(referralRepo repository.ReferralRepository, userRepo repository.UserRepository) ReferralService {
	return &referralService{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		newCode:      generateReferralCode,
	}
}

// Generate issues a fresh referral code for the given user. Uniqueness is
// enforced by the store's unique index on code: a collision discards the
// candidate and retries with a new one, bounded at maxCodeAttempts so a
// degenerate code space cannot loop forever.
func (s *referralService) Generate(ctx context.Context, userID string) (*model.Referral, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("generate referral code: %w", err)
		}

		referral := &model.Referral{Code: code, OwnerID: ownerID}
		err = s.referralRepo.Create(ctx, referral)
		if err == nil {
			metrics.ReferralsGenerated.Inc()
			return referral, nil
		}
		if errors.Is(err, repository.ErrDuplicateCode) {
			metrics.ReferralCodeCollisions.Inc()
			continue
		}
		return nil, fmt.Errorf("create referral: %w", err)
	}

	return nil, ErrCodeGeneration
}

// Redeem consumes a referral code on behalf of userID. Checks run in a fixed
// order against the fetched record: unknown code, already used, self-redemption,
// unknown redeemer. The final transition goes through the repository's
// conditional update, so two concurrent redemptions of the same code cannot
// both succeed.
func (s *referralService) Redeem(ctx context.Context, code, userID string) (*model.Referral, error) {
	referral, err := s.referralRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("find referral: %w", err)
	}

	if referral.UsedByID != nil {
		return nil, ErrReferralUsed
	}

	// Compare parsed ids so a non-canonical rendering of the owner's own id
	// (uppercase, hyphenless) cannot slip past the self-referral guard.
	redeemerID, parseErr := uuid.Parse(userID)
	if parseErr == nil {
		if redeemerID == referral.OwnerID {
			return nil, ErrSelfReferral
		}
	} else if referral.OwnerID.String() == userID {
		return nil, ErrSelfReferral
	}
	if parseErr != nil {
		return nil, ErrUserNotFound
	}
	if _, err := s.userRepo.GetByID(ctx, redeemerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	updated, err := s.referralRepo.MarkUsed(ctx, referral.ID, redeemerID)
	if err != nil {
		// Lost a race against a concurrent redemption.
		if errors.Is(err, repository.ErrAlreadyUsed) {
			return nil, ErrReferralUsed
		}
		return nil, fmt.Errorf("mark referral used: %w", err)
	}

	metrics.ReferralsRedeemed.Inc()
	return updated, nil
}

func (s *referralService) ListByOwner(ctx context.Context, userID string) ([]model.Referral, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return s.referralRepo.ListByOwner(ctx, ownerID)
}

// generateReferralCode draws a fixed-length lowercase-hex token from a
// cryptographically strong source.
func generateReferralCode() (string, error) {
	b := make([]byte, referralCodeLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
