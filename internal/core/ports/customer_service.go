package ports

import (
	"context"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// CreateCustomerInput carries the data for a new customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// ListCustomersInput carries the query parameters for the list endpoint.
type ListCustomersInput struct {
	Page   int
	Limit  int
	Search string
}

// ListCustomersResult is a page of customers with pagination metadata.
type ListCustomersResult struct {
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	TotalRecords int64              `json:"totalRecords"`
	TotalPages   int                `json:"totalPages"`
	Data         []*domain.Customer `json:"data"`
}

// CustomersService defines use-case operations for customers.
type CustomersService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context, input ListCustomersInput) (*ListCustomersResult, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	Update(ctx context.Context, id int, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}
