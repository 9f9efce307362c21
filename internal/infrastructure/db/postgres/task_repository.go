package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `INSERT INTO tasks (title, description, assigned_to, customer_id, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	created := *task
	err := r.db.QueryRowContext(ctx, query,
		task.Title, nullable(task.Description), task.AssignedTo, task.CustomerID, task.Status, task.CreatedAt,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("TaskRepository.Create: %w", err)
	}
	return &created, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `SELECT id, title, description, assigned_to, customer_id, status, created_at
	          FROM tasks WHERE id = $1`
	return scanTask(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

// List returns tasks newest first with the assigned user and customer
// summaries joined in. A non-nil AssignedTo scopes the result to one user.
func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.TaskDetail, error) {
	query := `SELECT t.id, t.title, t.description, t.assigned_to, t.customer_id, t.status, t.created_at,
	                 u.id, u.name, u.email,
	                 c.id, c.name, c.email, c.phone
	          FROM tasks t
	          JOIN users u ON u.id = t.assigned_to
	          JOIN customers c ON c.id = t.customer_id`
	args := []any{}
	if filter.AssignedTo != nil {
		query += " WHERE t.assigned_to = $1"
		args = append(args, *filter.AssignedTo)
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("TaskRepository.List: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.TaskDetail{}
	for rows.Next() {
		detail := &domain.TaskDetail{}
		var description sql.NullString
		err := rows.Scan(
			&detail.ID, &detail.Title, &description, &detail.AssignedTo, &detail.CustomerID, &detail.Status, &detail.CreatedAt,
			&detail.AssignedUser.ID, &detail.AssignedUser.Name, &detail.AssignedUser.Email,
			&detail.Customer.ID, &detail.Customer.Name, &detail.Customer.Email, &detail.Customer.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("TaskRepository.List: %w", err)
		}
		detail.Description = description.String
		tasks = append(tasks, detail)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int, status domain.TaskStatus) (*domain.Task, error) {
	query := `UPDATE tasks SET status = $2 WHERE id = $1
	          RETURNING id, title, description, assigned_to, customer_id, status, created_at`
	return scanTask(r.db.QueryRowContext(ctx, query, id, status), "UpdateStatus")
}

func scanTask(row *sql.Row, op string) (*domain.Task, error) {
	task := &domain.Task{}
	var description sql.NullString
	err := row.Scan(&task.ID, &task.Title, &description, &task.AssignedTo, &task.CustomerID, &task.Status, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Task not found")
		}
		return nil, fmt.Errorf("TaskRepository.%s: %w", op, err)
	}
	task.Description = description.String
	return task, nil
}
