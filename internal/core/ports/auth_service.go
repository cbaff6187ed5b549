package ports

import (
	"context"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

// SignupInput carries the data needed to register an identity.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthResult is returned by signup and login: the identity plus a freshly
// issued credential proving it.
type AuthResult struct {
	Identity   *domain.Identity
	Credential string
}

// AuthService implements registration and login, including the admin-only
// variants.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	// AdminSignup registers an identity with the ADMIN role regardless of
	// any role supplied by the caller.
	AdminSignup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// AdminLogin behaves like Login but only succeeds for ADMIN identities.
	AdminLogin(ctx context.Context, email, password string) (*AuthResult, error)
}
