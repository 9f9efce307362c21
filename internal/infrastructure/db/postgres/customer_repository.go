package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `INSERT INTO customers (name, email, phone, company, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	created := *customer
	err := r.db.QueryRowContext(ctx, query,
		customer.Name, customer.Email, customer.Phone, nullable(customer.Company), customer.CreatedAt,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if conflict := conflictError("customers", err); conflict != err {
			return nil, conflict
		}
		return nil, fmt.Errorf("CustomerRepository.Create: %w", err)
	}
	return &created, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `SELECT id, name, email, phone, company, created_at
	          FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

// List returns a page of customers ordered by creation time descending and
// the total number of rows matching the filter. Search is a case-insensitive
// substring match on name.
func (r *CustomerRepository) List(ctx context.Context, filter ports.ListCustomersFilter) ([]*domain.Customer, int64, error) {
	where := ""
	args := []any{}
	if filter.Search != "" {
		where = `WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'`
		args = append(args, escapeLike(filter.Search))
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM customers %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("CustomerRepository.List count: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`SELECT id, name, email, phone, company, created_at
	          FROM customers %s
	          ORDER BY created_at DESC
	          LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("CustomerRepository.List: %w", err)
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		customer := &domain.Customer{}
		var company sql.NullString
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &company, &customer.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("CustomerRepository.List: %w", err)
		}
		customer.Company = company.String
		customers = append(customers, customer)
	}
	return customers, total, rows.Err()
}

// Update applies a partial update built from the non-nil input fields.
func (r *CustomerRepository) Update(ctx context.Context, id int, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	sets := []string{}
	args := []any{id}

	addSet := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	addSet("name", input.Name)
	addSet("email", input.Email)
	addSet("phone", input.Phone)
	addSet("company", input.Company)

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE customers SET %s WHERE id = $1
	          RETURNING id, name, email, phone, company, created_at`, strings.Join(sets, ", "))

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...), "Update")
	if err != nil {
		if conflict := conflictError("customers", err); conflict != err {
			return nil, conflict
		}
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("CustomerRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.NotFound("Customer not found")
	}
	return nil
}

func scanCustomer(row *sql.Row, op string) (*domain.Customer, error) {
	customer := &domain.Customer{}
	var company sql.NullString
	err := row.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &company, &customer.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Customer not found")
		}
		return nil, fmt.Errorf("CustomerRepository.%s: %w", op, err)
	}
	customer.Company = company.String
	return customer, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// escapeLike neutralizes LIKE wildcards so a search term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
