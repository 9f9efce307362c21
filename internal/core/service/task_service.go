package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldline/crm-api/internal/api/metrics"
	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

// TasksService implements task creation, role-scoped listing, and
// ownership-aware status updates.
type TasksService struct {
	repo      ports.TaskRepository
	users     ports.UserRepository
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewTasksService(
	repo ports.TaskRepository,
	users ports.UserRepository,
	customers ports.CustomerRepository,
	logger zerolog.Logger,
) *TasksService {
	return &TasksService{repo: repo, users: users, customers: customers, logger: logger}
}

// Create persists a new task. The assignee must be an existing EMPLOYEE and
// the customer must exist; the checks run in that order. Status defaults to
// PENDING when omitted.
func (s *TasksService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	assignee, err := s.users.FindByID(ctx, input.AssignedTo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Assigned user not found")
		}
		return nil, err
	}
	if assignee.Role != domain.RoleEmployee {
		return nil, domain.Forbidden("Tasks can only be assigned to employees")
	}

	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Customer not found")
		}
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	task, err := s.repo.Create(ctx, &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		CustomerID:  input.CustomerID,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.logger.Info().
		Int("task_id", task.ID).
		Int("assigned_to", task.AssignedTo).
		Int("customer_id", task.CustomerID).
		Msg("task created")

	return task, nil
}

// List returns tasks visible to the requester: admins see all tasks,
// employees only those assigned to them.
func (s *TasksService) List(ctx context.Context, requesterID int, requesterRole domain.Role) ([]*domain.TaskDetail, error) {
	filter := ports.ListTasksFilter{}
	if requesterRole != domain.RoleAdmin {
		filter.AssignedTo = &requesterID
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus sets a task's status. Employees may only update tasks
// assigned to them; admins may update any task.
func (s *TasksService) UpdateStatus(ctx context.Context, taskID int, status domain.TaskStatus, requesterID int, requesterRole domain.Role) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if requesterRole == domain.RoleEmployee && task.AssignedTo != requesterID {
		return nil, domain.Forbidden("You can only update tasks assigned to you")
	}

	updated, err := s.repo.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}

	metrics.TaskStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Int("task_id", taskID).Str("status", string(status)).Msg("task status updated")

	return updated, nil
}
