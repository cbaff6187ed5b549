package domain

import "time"

// Review is a client's rating of a completed booking. At most one review
// exists per booking, enforced both by CheckReviewEligibility and by a
// unique index in the store.
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	BookingID string    `json:"booking_id" bson:"booking_id"`
	ClientID  string    `json:"client_id" bson:"client_id"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CheckReviewEligibility decides whether requesterID may attach a review to
// booking. The checks run in a fixed order so the caller always surfaces the
// most specific failure:
//
//  1. booking must exist
//  2. requester must be the booking's own client
//  3. booking must have reached COMPLETED
//  4. the booking must not already carry a review
//
// existing is the review already stored for the booking, or nil.
func CheckReviewEligibility(requesterID string, booking *Booking, existing *Review) error {
	if booking == nil {
		return ErrBookingNotFound
	}
	if requesterID != booking.ClientID {
		return ErrForbidden
	}
	if booking.Status != StatusCompleted {
		return ErrBookingNotCompleted
	}
	if existing != nil {
		return ErrDuplicateReview
	}
	return nil
}
