package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers []*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{nextID: 1}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return nil, domain.Conflict("email already exists")
		}
	}
	created := cloneCustomer(customer)
	created.ID = r.nextID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC().Add(time.Duration(r.nextID) * time.Second)
	}
	r.nextID++
	// Prepend so iteration order matches created_at DESC.
	r.customers = append([]*domain.Customer{created}, r.customers...)
	return cloneCustomer(created), nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.NotFound("Customer not found")
}

func (r *stubCustomerRepo) List(_ context.Context, filter ports.ListCustomersFilter) ([]*domain.Customer, int64, error) {
	matched := []*domain.Customer{}
	for _, c := range r.customers {
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, cloneCustomer(c))
	}

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return []*domain.Customer{}, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, id int, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID != id {
			continue
		}
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.Email != nil {
			c.Email = *input.Email
		}
		if input.Phone != nil {
			c.Phone = *input.Phone
		}
		if input.Company != nil {
			c.Company = *input.Company
		}
		return cloneCustomer(c), nil
	}
	return nil, domain.NotFound("Customer not found")
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return domain.NotFound("Customer not found")
}

func seedCustomers(t *testing.T, repo *stubCustomerRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := repo.Create(context.Background(), &domain.Customer{
			Name:  fmt.Sprintf("Customer %02d", i),
			Email: fmt.Sprintf("customer%02d@example.com", i),
			Phone: "+1000000000",
		})
		if err != nil {
			t.Fatalf("seed customer %d: %v", i, err)
		}
	}
}

func TestCustomersService_List_Pagination(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())
	seedCustomers(t, repo, 25)

	result, err := svc.List(context.Background(), ports.ListCustomersInput{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.TotalRecords != 25 {
		t.Fatalf("expected 25 total records, got %d", result.TotalRecords)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", result.TotalPages)
	}
	if len(result.Data) != 10 {
		t.Fatalf("expected 10 rows on page 1, got %d", len(result.Data))
	}

	page3, err := svc.List(context.Background(), ports.ListCustomersInput{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page3.Data) != 5 {
		t.Fatalf("expected 5 rows on page 3, got %d", len(page3.Data))
	}
}

func TestCustomersService_List_PageBeyondRange(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())
	seedCustomers(t, repo, 25)

	result, err := svc.List(context.Background(), ports.ListCustomersInput{Page: 7, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Data) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(result.Data))
	}
	if result.TotalRecords != 25 || result.TotalPages != 3 || result.Page != 7 {
		t.Fatalf("unexpected metadata: %+v", result)
	}
}

func TestCustomersService_List_Defaults(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())
	seedCustomers(t, repo, 3)

	result, err := svc.List(context.Background(), ports.ListCustomersInput{Page: 0, Limit: -5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Page != 1 || result.Limit != 10 {
		t.Fatalf("expected normalized page=1 limit=10, got page=%d limit=%d", result.Page, result.Limit)
	}
}

func TestCustomersService_List_Search(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())

	for _, name := range []string{"Acme Corp", "Globex", "acme industries"} {
		if _, err := repo.Create(context.Background(), &domain.Customer{
			Name: name, Email: name + "@example.com", Phone: "+1",
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	result, err := svc.List(context.Background(), ports.ListCustomersInput{Page: 1, Limit: 10, Search: "ACME"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.TotalRecords != 2 {
		t.Fatalf("expected 2 matches, got %d", result.TotalRecords)
	}
	for _, c := range result.Data {
		if !strings.Contains(strings.ToLower(c.Name), "acme") {
			t.Fatalf("unexpected match: %s", c.Name)
		}
	}
}

func TestCustomersService_Create_SetsCreatedAt(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name: "Acme Corp", Email: "contact@acme.com", Phone: "+1234567890",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CreatedAt.Before(before) || created.CreatedAt.After(time.Now().UTC()) {
		t.Fatalf("creation time not stamped by the service: %v", created.CreatedAt)
	}
}

func TestCustomersService_GetByID_NotFound(t *testing.T) {
	svc := NewCustomersService(newStubCustomerRepo(), zerolog.Nop())

	if _, err := svc.GetByID(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCustomersService_Update_Partial(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name: "Acme Corp", Email: "contact@acme.com", Phone: "+1234567890", Company: "Acme",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPhone := "+1987654321"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCustomerInput{Phone: &newPhone})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != newPhone {
		t.Fatalf("phone not updated: %s", updated.Phone)
	}
	if updated.Name != "Acme Corp" || updated.Email != "contact@acme.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestCustomersService_Update_NotFound(t *testing.T) {
	svc := NewCustomersService(newStubCustomerRepo(), zerolog.Nop())

	name := "New Name"
	if _, err := svc.Update(context.Background(), 42, ports.UpdateCustomerInput{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCustomersService_Delete(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomersService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name: "Acme Corp", Email: "contact@acme.com", Phone: "+1234567890",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
