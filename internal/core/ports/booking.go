package ports

import (
	"context"
	"time"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

// CreateBookingInput carries the data needed to book a service.
type CreateBookingInput struct {
	ServiceID   string
	ProviderID  string
	ScheduledAt time.Time
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListForIdentity returns every booking in which the identity appears as
	// client or provider.
	ListForIdentity(ctx context.Context, identityID string) ([]*domain.Booking, error)
	// UpdateStatus atomically moves the booking from the expected current
	// status to next and appends a history entry. It reports
	// domain.ErrBookingNotFound when no document matches the id and expected
	// status, leaving the caller to distinguish a missing booking from a
	// concurrent transition.
	UpdateStatus(ctx context.Context, id string, current, next domain.BookingStatus, actorID string, ts time.Time) error
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	// CreateBooking books a service for the calling client. The referenced
	// service must exist and the referenced provider must hold a role able
	// to take bookings.
	CreateBooking(ctx context.Context, caller *domain.Identity, input CreateBookingInput) (*domain.Booking, error)
	// ListBookings returns the caller's bookings, scoped to those where the
	// caller is the client or the provider.
	ListBookings(ctx context.Context, caller *domain.Identity) ([]*domain.Booking, error)
	// UpdateStatus drives a lifecycle transition. Only the booking's own
	// provider or an ADMIN may request one, and the move must be allowed by
	// the transition table.
	UpdateStatus(ctx context.Context, caller *domain.Identity, bookingID string, next domain.BookingStatus) (*domain.Booking, error)
}
