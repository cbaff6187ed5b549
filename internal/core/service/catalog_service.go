package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
)

// CatalogService implements the service catalog use cases.
type CatalogService struct {
	repo ports.ServiceRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// CreateService publishes a new offering owned by the caller.
func (s *CatalogService) CreateService(ctx context.Context, caller *domain.Identity, input ports.CreateServiceInput) (*domain.Service, error) {
	if err := domain.Authorize(caller, domain.OpCreateService, nil); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		OwnerID:     caller.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		s.log.Error().Err(err).Msg("failed to create service")
		return nil, err
	}

	s.log.Info().Str("service_id", svc.ID).Str("owner_id", caller.ID).Msg("service created")
	return svc, nil
}

// ListServices returns all offerings. Readable by anyone.
func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}
