package ports

import (
	"context"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// ListCustomersFilter carries the query parameters for listing customers.
type ListCustomersFilter struct {
	Search string // optional: case-insensitive substring match on name
	Page   int    // 1-based
	Limit  int    // rows per page
}

// UpdateCustomerInput holds a partial customer update. Nil fields are left
// untouched.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	// List returns a page of customers matching filter, newest first, and the
	// total count of matching rows.
	List(ctx context.Context, filter ListCustomersFilter) ([]*domain.Customer, int64, error)
	Update(ctx context.Context, id int, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}
