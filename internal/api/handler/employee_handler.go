package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brygada/work-manager/internal/core/ports"
)

// EmployeeHandler handles employee CRUD requests.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	FirstName string  `json:"imie"`
	LastName  string  `json:"nazwisko"`
	Position  string  `json:"stanowisko"`
	Rate      float64 `json:"stawka" validate:"gte=0"`
}

type updateRateRequest struct {
	Rate float64 `json:"stawka" validate:"gte=0"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// List handles GET /api/pracownicy.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Router       /api/pracownicy [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Create handles POST /api/pracownicy. Crew lead only.
//
// @Summary      Add an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Router       /api/pracownicy [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Rate:      req.Rate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/pracownicy/:id. Crew lead only. The employee's
// time entries are deliberately left behind.
//
// @Summary      Remove an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  successResponse
// @Router       /api/pracownicy/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// UpdateRate handles PUT /api/pracownicy/:id/stawka. Accountant only.
//
// @Summary      Update an employee's hourly rate
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Employee id"
// @Param        body  body      updateRateRequest  true  "New rate"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/pracownicy/{id}/stawka [put]
func (h *EmployeeHandler) UpdateRate(c echo.Context) error {
	var req updateRateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.UpdateRate(c.Request().Context(), c.Param("id"), req.Rate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}
