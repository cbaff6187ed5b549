package service

import (
	"context"
	"testing"
	"time"

	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

type reviewFixture struct {
	*bookingFixture
	reviews *stubReviewRepo
	svc     *ReviewService
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	bf := newBookingFixture(t)
	reviews := newStubReviewRepo()
	return &reviewFixture{
		bookingFixture: bf,
		reviews:        reviews,
		svc:            NewReviewService(reviews, bf.bookings, discardLogger),
	}
}

// completedBooking drives a booking through PENDING → CONFIRMED → COMPLETED.
func (f *reviewFixture) completedBooking(t *testing.T) *domain.Booking {
	t.Helper()
	booking, err := f.bookingFixture.svc.CreateBooking(context.Background(), f.client, f.createInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := f.bookingFixture.svc.UpdateStatus(context.Background(), f.provider, booking.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	completed, err := f.bookingFixture.svc.UpdateStatus(context.Background(), f.provider, booking.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return completed
}

func TestReviewService_Create_Success(t *testing.T) {
	f := newReviewFixture(t)
	booking := f.completedBooking(t)

	review, err := f.svc.CreateReview(context.Background(), f.client, ports.CreateReviewInput{
		BookingID: booking.ID,
		Rating:    5,
		Comment:   "great",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.ClientID != f.client.ID || review.BookingID != booking.ID {
		t.Fatalf("review not bound to caller and booking: %+v", review)
	}
}

func TestReviewService_Create_UnknownBooking(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.CreateReview(context.Background(), f.client, ports.CreateReviewInput{
		BookingID: "44444444-4444-4444-8444-444444444444",
		Rating:    4,
	})
	if err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestReviewService_Create_NotBookingClient(t *testing.T) {
	f := newReviewFixture(t)
	booking := f.completedBooking(t)
	other := f.identities.add("client2", domain.RoleClient)

	_, err := f.svc.CreateReview(context.Background(), other, ports.CreateReviewInput{BookingID: booking.ID, Rating: 3})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReviewService_Create_BookingNotCompleted(t *testing.T) {
	f := newReviewFixture(t)
	booking, err := f.bookingFixture.svc.CreateBooking(context.Background(), f.client, f.createInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	_, err = f.svc.CreateReview(context.Background(), f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 4})
	if err != domain.ErrBookingNotCompleted {
		t.Fatalf("PENDING booking: expected ErrBookingNotCompleted, got %v", err)
	}

	if _, err := f.bookingFixture.svc.UpdateStatus(context.Background(), f.provider, booking.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	_, err = f.svc.CreateReview(context.Background(), f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 4})
	if err != domain.ErrBookingNotCompleted {
		t.Fatalf("CANCELLED booking: expected ErrBookingNotCompleted, got %v", err)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	f := newReviewFixture(t)
	booking := f.completedBooking(t)

	input := ports.CreateReviewInput{BookingID: booking.ID, Rating: 5}
	if _, err := f.svc.CreateReview(context.Background(), f.client, input); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := f.svc.CreateReview(context.Background(), f.client, input); err != domain.ErrDuplicateReview {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestReviewService_Create_RoleGate(t *testing.T) {
	f := newReviewFixture(t)
	booking := f.completedBooking(t)

	input := ports.CreateReviewInput{BookingID: booking.ID, Rating: 5}
	if _, err := f.svc.CreateReview(context.Background(), f.provider, input); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for provider, got %v", err)
	}
	if _, err := f.svc.CreateReview(context.Background(), nil, input); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for anonymous, got %v", err)
	}
}

func TestReviewService_List(t *testing.T) {
	f := newReviewFixture(t)
	booking := f.completedBooking(t)

	if _, err := f.svc.CreateReview(context.Background(), f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 5}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	reviews, err := f.svc.ListReviews(context.Background(), f.client, booking.ID)
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews %+v", reviews)
	}

	none, err := f.svc.ListReviews(context.Background(), f.client, "other-booking")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no reviews, got %d", len(none))
	}
}

// Exercises the whole lifecycle the way a client and provider would: book,
// confirm, complete, review, then hit the duplicate and ownership walls.
func TestBookingReviewFlow(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	booking, err := f.bookingFixture.svc.CreateBooking(ctx, f.client, ports.CreateBookingInput{
		ServiceID:   f.serviceID,
		ProviderID:  f.provider.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	// Reviewing before completion is rejected at every stage.
	if _, err := f.svc.CreateReview(ctx, f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 5}); err != domain.ErrBookingNotCompleted {
		t.Fatalf("review on PENDING: expected ErrBookingNotCompleted, got %v", err)
	}

	if _, err := f.bookingFixture.svc.UpdateStatus(ctx, f.provider, booking.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := f.svc.CreateReview(ctx, f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 5}); err != domain.ErrBookingNotCompleted {
		t.Fatalf("review on CONFIRMED: expected ErrBookingNotCompleted, got %v", err)
	}

	if _, err := f.bookingFixture.svc.UpdateStatus(ctx, f.provider, booking.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	review, err := f.svc.CreateReview(ctx, f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 5, Comment: "on time"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if review.Rating != 5 {
		t.Fatalf("unexpected rating %d", review.Rating)
	}

	if _, err := f.svc.CreateReview(ctx, f.client, ports.CreateReviewInput{BookingID: booking.ID, Rating: 1}); err != domain.ErrDuplicateReview {
		t.Fatalf("second review: expected ErrDuplicateReview, got %v", err)
	}

	other := f.identities.add("client2", domain.RoleClient)
	if _, err := f.svc.CreateReview(ctx, other, ports.CreateReviewInput{BookingID: booking.ID, Rating: 2}); err != domain.ErrForbidden {
		t.Fatalf("stranger review: expected ErrForbidden, got %v", err)
	}
}
