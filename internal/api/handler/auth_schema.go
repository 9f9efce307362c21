package handler

import "github.com/fieldline/crm-api/internal/core/domain"

// errorResponse documents the error envelope in swagger output; the real
// rendering happens in the central error handler.
type errorResponse struct {
	Error      string   `json:"error"`
	StatusCode int      `json:"statusCode"`
	Details    []string `json:"details,omitempty"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN EMPLOYEE"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}
