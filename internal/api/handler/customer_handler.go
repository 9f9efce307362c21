package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fieldline/crm-api/internal/core/ports"
)

// CustomerHandler handles customer CRUD requests.
type CustomerHandler struct {
	service ports.CustomersService
}

func NewCustomerHandler(service ports.CustomersService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /customers (admin only).
//
// @Summary      Create a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// List handles GET /customers with pagination and optional name search.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Param        search  query     string  false  "Case-insensitive name filter"
// @Success      200     {object}  ports.ListCustomersResult
// @Failure      401     {object}  errorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListCustomersInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Get handles GET /customers/:id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// Update handles PATCH /customers/:id (admin only). Only the fields present
// in the payload are changed.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Fields to update"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Update(c.Request().Context(), id, ports.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customers/:id (admin only).
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Customer deleted successfully"})
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id parameter")
	}
	return id, nil
}
