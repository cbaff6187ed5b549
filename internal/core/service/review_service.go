package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookinghub/booking-api/internal/api/metrics"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

// ReviewService implements review creation behind the eligibility gate.
type ReviewService struct {
	reviews  ports.ReviewRepository
	bookings ports.BookingRepository
	log      zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, bookings ports.BookingRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, log: log}
}

// CreateReview attaches a review to a booking. The eligibility gate runs
// against a fresh read of the booking and any existing review; the unique
// index on booking_id backstops the duplicate check under concurrency.
func (s *ReviewService) CreateReview(ctx context.Context, caller *domain.Identity, input ports.CreateReviewInput) (*domain.Review, error) {
	if err := domain.Authorize(caller, domain.OpCreateReview, nil); err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByID(ctx, input.BookingID)
	if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, err
	}

	existing, err := s.reviews.FindByBookingID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckReviewEligibility(caller.ID, booking, existing); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		ClientID:  caller.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	s.log.Info().
		Str("review_id", review.ID).
		Str("booking_id", booking.ID).
		Int("rating", review.Rating).
		Msg("review created")

	return review, nil
}

// ListReviews returns the reviews attached to a booking.
func (s *ReviewService) ListReviews(ctx context.Context, caller *domain.Identity, bookingID string) ([]*domain.Review, error) {
	if err := domain.Authorize(caller, domain.OpListReviews, nil); err != nil {
		return nil, err
	}
	return s.reviews.ListByBookingID(ctx, bookingID)
}
