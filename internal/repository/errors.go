package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Tagged store errors. Services branch on these instead of inspecting driver
// error codes themselves.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateCode  = errors.New("referral code already exists")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrAlreadyUsed    = errors.New("referral already used")
)

// isUniqueViolation reports whether err is a unique-constraint violation. When
// constraint is non-empty the violated constraint name must contain it, so a
// collision on one index is never mistaken for a collision on another.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return false
		}
		return constraint == "" || strings.Contains(pgErr.ConstraintName, constraint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
