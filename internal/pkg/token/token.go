// Package token implements the credential service: issuing and verifying the
// signed, time-limited bearer tokens that prove an identity. Both operations
// are pure functions of the token and the signing secret — confirming that
// the identity still exists is a separate store lookup owned by the caller.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredential    = errors.New("credential is invalid")
	ErrCredentialExpired    = errors.New("credential has expired")
	ErrMissingSigningSecret = errors.New("signing secret must not be empty")
)

// DefaultTTL is the credential lifetime when none is configured.
const DefaultTTL = time.Hour

// Claims carries the identity id in the registered Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Service issues and resolves identity credentials. It holds no mutable
// state; a single instance is shared across all requests.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a Service from the process-wide signing secret. The
// secret is mandatory: there is no fallback value.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSigningSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed credential encoding identityID with an expiry of
// now+TTL. The same identity may hold many concurrently valid credentials.
func (s *Service) Issue(identityID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Resolve verifies the credential's signature and expiry and returns the
// identity id it encodes. Expiry is reported separately from structural or
// signature failures.
func (s *Service) Resolve(credential string) (string, error) {
	parsed, err := jwt.ParseWithClaims(credential, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrCredentialExpired
		}
		return "", ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}
