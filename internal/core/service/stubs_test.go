package service

// In-memory stub repositories shared by the service tests. Each mirrors the
// error translation the real Mongo repository performs.

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// --- identities ---

type stubIdentityRepo struct {
	byID      map[string]*domain.Identity
	createErr error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byID: make(map[string]*domain.Identity)}
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == identity.Email {
			return domain.ErrEmailTaken
		}
	}
	clone := *identity
	r.byID[identity.ID] = &clone
	return nil
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	for _, id := range r.byID {
		if id.Email == email {
			clone := *id
			return &clone, nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	identity, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	clone := *identity
	return &clone, nil
}

// add seeds an identity directly, bypassing registration.
func (r *stubIdentityRepo) add(id string, role domain.Role) *domain.Identity {
	identity := &domain.Identity{
		ID:        id,
		Email:     id + "@example.com",
		Name:      id,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	r.byID[id] = identity
	return identity
}

// --- services ---

type stubServiceRepo struct {
	byID map[string]*domain.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{byID: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) Create(_ context.Context, service *domain.Service) error {
	clone := *service
	r.byID[service.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

// --- bookings ---

type stubBookingRepo struct {
	byID map[string]*domain.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	clone.StatusHistory = append([]domain.StatusHistoryEntry(nil), b.StatusHistory...)
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	r.byID[booking.ID] = cloneBooking(booking)
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) ListForIdentity(_ context.Context, identityID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.ClientID == identityID || b.ProviderID == identityID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

// UpdateStatus mirrors the conditional update the Mongo repository performs:
// no match on (id, current) reports not-found.
func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, current, next domain.BookingStatus, actorID string, ts time.Time) error {
	b, ok := r.byID[id]
	if !ok || b.Status != current {
		return domain.ErrBookingNotFound
	}
	b.Status = next
	b.StatusHistory = append(b.StatusHistory, domain.StatusHistoryEntry{Status: next, Timestamp: ts, ActorID: actorID})
	return nil
}

// --- reviews ---

type stubReviewRepo struct {
	byBooking map[string]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byBooking: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	if _, exists := r.byBooking[review.BookingID]; exists {
		return domain.ErrDuplicateReview
	}
	clone := *review
	r.byBooking[review.BookingID] = &clone
	return nil
}

func (r *stubReviewRepo) FindByBookingID(_ context.Context, bookingID string) (*domain.Review, error) {
	rev, ok := r.byBooking[bookingID]
	if !ok {
		return nil, nil
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) ListByBookingID(_ context.Context, bookingID string) ([]*domain.Review, error) {
	rev, ok := r.byBooking[bookingID]
	if !ok {
		return nil, nil
	}
	clone := *rev
	return []*domain.Review{&clone}, nil
}

// --- login throttle ---

type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (t *stubThrottle) TooManyFailures(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.limit, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Clear(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
