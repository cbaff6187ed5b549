package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// validTransitions defines the allowed state machine transitions. CANCELLED
// and COMPLETED are terminal: they have no outgoing edges, and a no-op to the
// same state is never listed.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ParseBookingStatus converts a raw string into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), nil
	}
	return "", ErrInvalidTransition
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next when the move from the current status is allowed,
// or ErrInvalidTransition otherwise. It is a pure function: persisting the
// result atomically is the caller's responsibility.
func (s BookingStatus) Transition(next BookingStatus) (BookingStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, ErrInvalidTransition
	}
	return next, nil
}

// StatusHistoryEntry records a single status change on a booking.
type StatusHistoryEntry struct {
	Status    BookingStatus `json:"status" bson:"status"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
	ActorID   string        `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
}

// Booking is the core aggregate: a client booking a provider's service.
// A booking is only ever mutated through the lifecycle transition; it is
// never deleted.
type Booking struct {
	ID            string               `json:"id" bson:"_id"`
	ClientID      string               `json:"client_id" bson:"client_id"`
	ProviderID    string               `json:"provider_id" bson:"provider_id"`
	ServiceID     string               `json:"service_id" bson:"service_id"`
	ScheduledAt   time.Time            `json:"scheduled_at" bson:"scheduled_at"`
	Status        BookingStatus        `json:"status" bson:"status"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}
