package handler

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	AssignedTo  int    `json:"assignedTo"  validate:"required"`
	CustomerID  int    `json:"customerId"  validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS DONE"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
}
