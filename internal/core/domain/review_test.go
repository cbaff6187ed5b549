package domain

import "testing"

func completedBooking() *Booking {
	return &Booking{ID: "b1", ClientID: "client1", ProviderID: "provider1", Status: StatusCompleted}
}

func TestCheckReviewEligibility_OK(t *testing.T) {
	if err := CheckReviewEligibility("client1", completedBooking(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckReviewEligibility_BookingMissing(t *testing.T) {
	if err := CheckReviewEligibility("client1", nil, nil); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestCheckReviewEligibility_WrongClient(t *testing.T) {
	if err := CheckReviewEligibility("client2", completedBooking(), nil); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCheckReviewEligibility_NotCompleted(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		b := completedBooking()
		b.Status = status
		if err := CheckReviewEligibility("client1", b, nil); err != ErrBookingNotCompleted {
			t.Errorf("status %s: expected ErrBookingNotCompleted, got %v", status, err)
		}
	}
}

func TestCheckReviewEligibility_AlreadyReviewed(t *testing.T) {
	existing := &Review{ID: "r1", BookingID: "b1", ClientID: "client1", Rating: 4}
	if err := CheckReviewEligibility("client1", completedBooking(), existing); err != ErrDuplicateReview {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

// Ownership outranks the completion check: a foreign client is told
// "forbidden", not "not completed", even on a pending booking.
func TestCheckReviewEligibility_CheckOrder(t *testing.T) {
	b := completedBooking()
	b.Status = StatusPending
	if err := CheckReviewEligibility("client2", b, nil); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
