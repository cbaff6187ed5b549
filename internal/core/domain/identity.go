package domain

import "time"

// Role classifies an identity. The set is closed: every role an identity can
// hold is one of the constants below, and the role is fixed at registration.
type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleProvider, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// CanProvide reports whether identities with this role may own services and
// receive bookings.
func (r Role) CanProvide() bool {
	return r == RoleProvider || r == RoleAdmin
}

// Identity models a registered actor in the system. The password hash is
// write-only: it never leaves the backend in any response.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
