package ports

import (
	"context"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// UsersService defines use-case operations for user administration.
type UsersService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error)
}
