package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookinghub/booking-api/internal/core/ports"
	"github.com/bookinghub/booking-api/internal/pkg/token"
)

// identityKey is the echo.Context key under which the authenticated identity
// is stored.
const identityKey = "identity"

// Auth resolves the bearer credential to an identity id, confirms the
// identity still exists, and injects it into the request context.
//
// Credential resolution is a pure check against the signing secret; the
// store lookup is a separate step so a credential for a since-deleted
// identity is rejected here rather than deeper in a service.
func Auth(credentials *token.Service, identities ports.IdentityRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identityID, err := credentials.Resolve(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrCredentialExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "credential expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
			}

			identity, err := identities.FindByID(c.Request().Context(), identityID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown identity")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}
