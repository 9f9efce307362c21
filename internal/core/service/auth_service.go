package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fieldline/crm-api/internal/api/metrics"
	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
	"github.com/fieldline/crm-api/pkg/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a new user account with a bcrypt-hashed password. The
// email must not already be in use.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(created.Role)).Inc()
	s.logger.Info().Int("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return created, nil
}

// Login authenticates by email and password and issues a session token.
// Unknown email and wrong password yield the identical error so callers
// cannot tell which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.Unauthorized("Invalid credentials")
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int("user_id", user.ID).Msg("user logged in")

	return &ports.LoginResult{AccessToken: accessToken, User: user}, nil
}
