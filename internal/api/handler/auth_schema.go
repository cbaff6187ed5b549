package handler

import "github.com/bookinghub/booking-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=2"`
	Role     string `json:"role"     validate:"required,oneof=CLIENT PROVIDER ADMIN"`
}

// adminSignupRequest omits the role field: the admin signup path always
// registers an ADMIN.
type adminSignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=2"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type authResponse struct {
	Identity   *domain.Identity `json:"identity"`
	Credential string           `json:"credential"`
}

type identityResponse struct {
	Identity *domain.Identity `json:"identity"`
}
