package ports

import (
	"context"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// CreateTaskInput carries the data for a new task. Status defaults to
// PENDING when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  int
	CustomerID  int
	Status      domain.TaskStatus
}

// TasksService defines use-case operations for tasks. Requester identity is
// passed in so ownership rules can be enforced.
type TasksService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, requesterID int, requesterRole domain.Role) ([]*domain.TaskDetail, error)
	UpdateStatus(ctx context.Context, taskID int, status domain.TaskStatus, requesterID int, requesterRole domain.Role) (*domain.Task, error)
}
