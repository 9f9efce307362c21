package ports

import (
	"context"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
