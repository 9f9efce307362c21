package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldline/crm-api/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (name, email, password_hash, role, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	created := *user
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if conflict := conflictError("users", err); conflict != err {
			return nil, conflict
		}
		return nil, fmt.Errorf("UserRepository.Create: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at
	          FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email), "FindByEmail")
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at
	          FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("UserRepository.List: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("UserRepository.List: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error) {
	query := `UPDATE users SET role = $2 WHERE id = $1
	          RETURNING id, name, email, password_hash, role, created_at`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id, role), "UpdateRole")
}

func (r *UserRepository) scanUser(row *sql.Row, op string) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("User not found")
		}
		return nil, fmt.Errorf("UserRepository.%s: %w", op, err)
	}
	return user, nil
}
