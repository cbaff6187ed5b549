package domain

import "errors"

// Sentinel errors shared across layers. The HTTP error handler is the single
// place where these map to status codes.
var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrIdentityNotFound = errors.New("identity not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrBookingNotFound  = errors.New("booking not found")

	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidProvider = errors.New("referenced identity cannot take bookings")

	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrDuplicateReview     = errors.New("booking already reviewed")
)
