package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/leixerzzz/horizonventura/internal/model"
)

func TestMemoryReferralCreateDuplicateCode(t *testing.T) {
	repo := NewMemoryReferralRepository()
	owner := uuid.New()

	first := &model.Referral{Code: "deadbeef", OwnerID: owner}
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second := &model.Referral{Code: "deadbeef", OwnerID: owner}
	if err := repo.Create(context.Background(), second); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("duplicate Create error = %v, want ErrDuplicateCode", err)
	}

	// The failed attempt must leave no trace.
	referrals, err := repo.ListByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(referrals) != 1 {
		t.Errorf("referral count = %d, want 1", len(referrals))
	}
}

func TestMemoryReferralGetByCode(t *testing.T) {
	repo := NewMemoryReferralRepository()

	if _, err := repo.GetByCode(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByCode error = %v, want ErrNotFound", err)
	}

	referral := &model.Referral{Code: "cafef00d", OwnerID: uuid.New()}
	if err := repo.Create(context.Background(), referral); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByCode(context.Background(), "cafef00d")
	if err != nil {
		t.Fatalf("GetByCode failed: %v", err)
	}
	if got.ID != referral.ID {
		t.Errorf("id = %s, want %s", got.ID, referral.ID)
	}
}

func TestMemoryReferralMarkUsedConditional(t *testing.T) {
	repo := NewMemoryReferralRepository()
	referral := &model.Referral{Code: "cafef00d", OwnerID: uuid.New()}
	if err := repo.Create(context.Background(), referral); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	winner := uuid.New()
	updated, err := repo.MarkUsed(context.Background(), referral.ID, winner)
	if err != nil {
		t.Fatalf("MarkUsed failed: %v", err)
	}
	if updated.UsedByID == nil || *updated.UsedByID != winner {
		t.Errorf("usedById = %v, want %s", updated.UsedByID, winner)
	}

	if _, err := repo.MarkUsed(context.Background(), referral.ID, uuid.New()); !errors.Is(err, ErrAlreadyUsed) {
		t.Fatalf("second MarkUsed error = %v, want ErrAlreadyUsed", err)
	}

	// The losing attempt must not overwrite the winner.
	got, err := repo.GetByCode(context.Background(), referral.Code)
	if err != nil {
		t.Fatalf("GetByCode failed: %v", err)
	}
	if got.UsedByID == nil || *got.UsedByID != winner {
		t.Errorf("usedById = %v, want %s", got.UsedByID, winner)
	}
}

func TestMemoryReferralMarkUsedConcurrent(t *testing.T) {
	repo := NewMemoryReferralRepository()
	referral := &model.Referral{Code: "cafef00d", OwnerID: uuid.New()}
	if err := repo.Create(context.Background(), referral); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	const contenders = 32
	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.MarkUsed(context.Background(), referral.ID, uuid.New())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else if !errors.Is(err, ErrAlreadyUsed) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
}

func TestMemoryUserDuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepository()

	if err := repo.Create(context.Background(), &model.User{Name: "alice", Email: "a@example.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err := repo.Create(context.Background(), &model.User{Name: "other", Email: "A@Example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate Create error = %v, want ErrDuplicateEmail", err)
	}
}
