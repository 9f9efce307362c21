// Package postgres implements the persistence gateway on PostgreSQL through
// database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/fieldline/crm-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Connect opens a connection pool, verifies connectivity with a ping, and
// returns the handle.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// conflictError translates a unique-constraint violation into a Conflict
// naming the offending column, e.g. "users_email_key" -> "email already
// exists". Other errors pass through unchanged.
func conflictError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		field := strings.TrimSuffix(strings.TrimPrefix(pgErr.ConstraintName, table+"_"), "_key")
		if field == "" {
			field = "value"
		}
		return domain.Conflict(field + " already exists")
	}
	return err
}
