package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

// UsersService implements user administration. Password hashes never leave
// the domain type's json-excluded field.
type UsersService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUsersService(repo ports.UserRepository, logger zerolog.Logger) *UsersService {
	return &UsersService{repo: repo, logger: logger}
}

func (s *UsersService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UsersService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateRole changes a user's role.
func (s *UsersService) UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", id).Str("role", string(role)).Msg("user role updated")
	return user, nil
}
