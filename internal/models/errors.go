package models

import "errors"

// Sentinel errors shared across services and handlers. Handlers map these
// to HTTP statuses; repos wrap store failures in ErrStoreUnavailable.
var (
	ErrUnauthenticated  = errors.New("missing credentials")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrForbidden        = errors.New("forbidden")
	ErrListingBooked    = errors.New("listing already booked")
	ErrListingNotFound  = errors.New("listing not found")
	ErrUserExists       = errors.New("user already exists")
	ErrStoreUnavailable = errors.New("document store unavailable")
)
