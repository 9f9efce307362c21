package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

// TaskHandler handles task requests.
type TaskHandler struct {
	service ports.TasksService
}

func NewTaskHandler(service ports.TasksService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /tasks (admin only).
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CustomerID:  req.CustomerID,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// List handles GET /tasks. Admins see every task; employees only their own.
//
// @Summary      List tasks visible to the requester
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TaskDetail
// @Failure      401  {object}  errorResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), user.ID, user.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// UpdateStatus handles PATCH /tasks/:id/status. Ownership is enforced by the
// service: employees may only touch tasks assigned to them.
//
// @Summary      Update a task's status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Task id"
// @Param        body  body      updateTaskStatusRequest  true  "New status"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.service.UpdateStatus(c.Request().Context(), id, domain.TaskStatus(req.Status), user.ID, user.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}
