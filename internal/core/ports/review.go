package ports

import (
	"context"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

// CreateReviewInput carries the data needed to review a booking.
type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create inserts a new review. A unique booking_id violation is
	// reported as domain.ErrDuplicateReview.
	Create(ctx context.Context, review *domain.Review) error
	// FindByBookingID returns the review attached to the booking, or nil
	// when none exists.
	FindByBookingID(ctx context.Context, bookingID string) (*domain.Review, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]*domain.Review, error)
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	// CreateReview attaches a review to a completed booking after the
	// eligibility gate passes.
	CreateReview(ctx context.Context, caller *domain.Identity, input CreateReviewInput) (*domain.Review, error)
	ListReviews(ctx context.Context, caller *domain.Identity, bookingID string) ([]*domain.Review, error)
}
