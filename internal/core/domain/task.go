package domain

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusDone
}

// Task is a unit of work assigned to an employee on behalf of a customer.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  int        `json:"assignedTo"`
	CustomerID  int        `json:"customerId"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// UserSummary is the assigned-user slice joined into task list views.
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerSummary is the customer slice joined into task list views.
type CustomerSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// TaskDetail is a task with its joined user and customer summaries.
type TaskDetail struct {
	Task
	AssignedUser UserSummary     `json:"assignedUser"`
	Customer     CustomerSummary `json:"customer"`
}
