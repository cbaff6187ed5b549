package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookinghub/booking-api/internal/api/metrics"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

// BookingService implements booking creation, listing, and the lifecycle
// transition use case.
type BookingService struct {
	bookings   ports.BookingRepository
	services   ports.ServiceRepository
	identities ports.IdentityRepository
	log        zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	services ports.ServiceRepository,
	identities ports.IdentityRepository,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		services:   services,
		identities: identities,
		log:        log,
	}
}

// CreateBooking books a service for the calling client. The booking starts
// in PENDING.
func (s *BookingService) CreateBooking(ctx context.Context, caller *domain.Identity, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := domain.Authorize(caller, domain.OpCreateBooking, nil); err != nil {
		return nil, err
	}

	if _, err := s.services.FindByID(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	provider, err := s.identities.FindByID(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.Role.CanProvide() {
		return nil, domain.ErrInvalidProvider
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    caller.ID,
		ProviderID:  provider.ID,
		ServiceID:   input.ServiceID,
		ScheduledAt: input.ScheduledAt,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPending, Timestamp: now, ActorID: caller.ID},
		},
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("client_id", caller.ID).
		Str("provider_id", provider.ID).
		Msg("booking created")

	return booking, nil
}

// ListBookings returns the bookings in which the caller appears as client or
// provider.
func (s *BookingService) ListBookings(ctx context.Context, caller *domain.Identity) ([]*domain.Booking, error) {
	if err := domain.Authorize(caller, domain.OpListBookings, nil); err != nil {
		return nil, err
	}
	return s.bookings.ListForIdentity(ctx, caller.ID)
}

// UpdateStatus drives a lifecycle transition on a booking.
//
// The transition is validated against an in-memory read first, then applied
// with a status-conditional update so a concurrent transition cannot be
// overwritten. A rejected transition leaves the booking unchanged.
func (s *BookingService) UpdateStatus(ctx context.Context, caller *domain.Identity, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(caller, domain.OpUpdateBookingStatus, booking); err != nil {
		return nil, err
	}

	if _, err := booking.Status.Transition(next); err != nil {
		metrics.TransitionRejectionsTotal.Inc()
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.bookings.UpdateStatus(ctx, bookingID, booking.Status, next, caller.ID, now); err != nil {
		if err == domain.ErrBookingNotFound {
			// The booking existed a moment ago, so the conditional update
			// lost a race with another transition.
			metrics.TransitionRejectionsTotal.Inc()
			return nil, domain.ErrInvalidTransition
		}
		s.log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to update booking status")
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues(string(booking.Status), string(next)).Inc()
	s.log.Info().
		Str("booking_id", bookingID).
		Str("from", string(booking.Status)).
		Str("to", string(next)).
		Str("actor_id", caller.ID).
		Msg("booking status updated")

	booking.StatusHistory = append(booking.StatusHistory, domain.StatusHistoryEntry{
		Status:    next,
		Timestamp: now,
		ActorID:   caller.ID,
	})
	booking.Status = next
	return booking, nil
}
