package ports

import (
	"context"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

// CreateServiceInput carries the data needed to publish a service offering.
type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
}

// ServiceRepository defines persistence operations for service offerings.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// CatalogService defines use-case operations on the service catalog.
type CatalogService interface {
	// CreateService publishes a new offering owned by the caller. Restricted
	// to ADMIN by the authorization gate.
	CreateService(ctx context.Context, caller *domain.Identity, input CreateServiceInput) (*domain.Service, error)
	// ListServices is public: no authentication required.
	ListServices(ctx context.Context) ([]*domain.Service, error)
}
