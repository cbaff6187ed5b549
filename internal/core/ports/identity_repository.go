package ports

import (
	"context"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

// IdentityRepository defines persistence operations for identities.
type IdentityRepository interface {
	// Create inserts a new identity. A unique-email violation is reported
	// as domain.ErrEmailTaken.
	Create(ctx context.Context, identity *domain.Identity) error
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
}
