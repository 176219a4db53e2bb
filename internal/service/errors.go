package service

import "errors"

// Sentinel errors carry the exact wire messages; handlers map them to HTTP
// statuses and pass err.Error() through as the response body.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrReferralNotFound = errors.New("Referral code not found")
	ErrReferralUsed     = errors.New("Referral code already used")
	ErrSelfReferral     = errors.New("Owner cannot use their own referral code")
	ErrCodeGeneration   = errors.New("Could not generate unique referral code")
	ErrBookingNotFound  = errors.New("Booking not found")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrEmailTaken       = errors.New("email already registered")
)
