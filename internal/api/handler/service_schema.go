package handler

import "github.com/bookinghub/booking-api/internal/core/domain"

type createServiceRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type serviceResponse struct {
	Service *domain.Service `json:"service"`
}

type listServicesResponse struct {
	Services []*domain.Service `json:"services"`
}
