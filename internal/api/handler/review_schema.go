package handler

import "github.com/bookinghub/booking-api/internal/core/domain"

type createReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type reviewResponse struct {
	Review *domain.Review `json:"review"`
}

type listReviewsResponse struct {
	Reviews []*domain.Review `json:"reviews"`
}
