package handler

import (
	"time"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

type createBookingRequest struct {
	ServiceID   string    `json:"service_id"   validate:"required,uuid4"`
	ProviderID  string    `json:"provider_id"  validate:"required,uuid4"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type updateBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

type bookingResponse struct {
	Booking *domain.Booking `json:"booking"`
}

type listBookingsResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
}
