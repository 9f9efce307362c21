package ports

import (
	"context"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// ListTasksFilter scopes a task listing. A nil AssignedTo returns all tasks.
type ListTasksFilter struct {
	AssignedTo *int
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int) (*domain.Task, error)
	// List returns tasks matching filter, newest first, with the assigned
	// user and customer summaries joined in.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.TaskDetail, error)
	UpdateStatus(ctx context.Context, id int, status domain.TaskStatus) (*domain.Task, error)
}
