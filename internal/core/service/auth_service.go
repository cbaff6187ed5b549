package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookinghub/booking-api/internal/api/metrics"
	"github.com/bookinghub/booking-api/internal/core/domain"
	"github.com/bookinghub/booking-api/internal/core/ports"
	"github.com/bookinghub/booking-api/internal/pkg/token"
)

// bcryptCost matches the cost the stored hashes were created with.
const bcryptCost = 10

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Clear(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo        ports.IdentityRepository
	credentials *token.Service
	throttle    LoginThrottle
	log         zerolog.Logger
}

func NewAuthService(repo ports.IdentityRepository, credentials *token.Service, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, credentials: credentials, throttle: throttle, log: log}
}

// Signup registers a new identity and issues its first credential.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	return s.register(ctx, input, role)
}

// AdminSignup registers an ADMIN identity. The role in the input is ignored.
func (s *AuthService) AdminSignup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	return s.register(ctx, input, domain.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, input ports.SignupInput, role domain.Role) (*ports.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, err
	}

	credential, err := s.credentials.Issue(identity.ID)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("identity_id", identity.ID).Str("role", string(role)).Msg("identity registered")

	return &ports.AuthResult{Identity: identity, Credential: credential}, nil
}

// Login authenticates by email and password and issues a fresh credential.
// Consecutive failures for the same email are throttled.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.login(ctx, email, password, "")
}

// AdminLogin authenticates like Login but rejects non-ADMIN identities.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.login(ctx, email, password, domain.RoleAdmin)
}

func (s *AuthService) login(ctx context.Context, email, password string, requiredRole domain.Role) (*ports.AuthResult, error) {
	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Not-found is reported as invalid credentials so the response does
		// not reveal whether the email is registered.
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if requiredRole != "" && identity.Role != requiredRole {
		return nil, domain.ErrUnauthorized
	}

	if s.throttle != nil {
		if err := s.throttle.Clear(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear login throttle")
		}
	}

	credential, err := s.credentials.Issue(identity.ID)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Identity: identity, Credential: credential}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}
