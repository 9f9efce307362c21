package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldline/crm-api/internal/api/metrics"
	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// CustomersService implements customer CRUD and paginated listing.
type CustomersService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomersService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomersService {
	return &CustomersService{repo: repo, logger: logger}
}

// Create persists a new customer. Email uniqueness is enforced by the store
// and surfaced as a conflict, not pre-checked here.
func (s *CustomersService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.Create(ctx, &domain.Customer{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.CustomersCreatedTotal.Inc()
	s.logger.Info().Int("customer_id", customer.ID).Msg("customer created")

	return customer, nil
}

// List returns a page of customers ordered by creation time descending,
// optionally filtered by a case-insensitive substring match on name.
func (s *CustomersService) List(ctx context.Context, input ports.ListCustomersInput) (*ports.ListCustomersResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	customers, total, err := s.repo.List(ctx, ports.ListCustomersFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListCustomersResult{
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		Data:         customers,
	}, nil
}

func (s *CustomersService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update to an existing customer.
func (s *CustomersService) Update(ctx context.Context, id int, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

func (s *CustomersService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("customer_id", id).Msg("customer deleted")
	return nil
}
