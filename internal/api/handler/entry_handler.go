package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brygada/work-manager/internal/core/ports"
)

// EntryHandler handles time-entry requests.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

type createEntryRequest struct {
	EmployeeID string  `json:"pracownikId"`
	Date       string  `json:"data"`
	Hours      float64 `json:"godziny"`
	Note       string  `json:"notatka"`
}

// updateEntryRequest distinguishes an absent note from an empty one; hours
// carry the original keep-on-zero semantics so no pointer is needed.
type updateEntryRequest struct {
	Hours float64 `json:"godziny"`
	Note  *string `json:"notatka"`
}

// List handles GET /api/wpisy/:rok/:miesiac (month zero-based).
//
// @Summary      List time entries for a period
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        rok      path      int  true  "Year"
// @Param        miesiac  path      int  true  "Zero-based month"
// @Success      200      {array}   domain.TimeEntry
// @Router       /api/wpisy/{rok}/{miesiac} [get]
func (h *EntryHandler) List(c echo.Context) error {
	year, month := periodParams(c)
	entries, err := h.service.ListByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/wpisy. Crew lead only. The entry records the
// caller's display name as its author.
//
// @Summary      Record worked hours
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntryRequest  true  "Entry details"
// @Success      200   {object}  domain.TimeEntry
// @Failure      400   {object}  map[string]string
// @Router       /api/wpisy [post]
func (h *EntryHandler) Create(c echo.Context) error {
	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	createdBy, err := ctxDisplayName(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Create(c.Request().Context(), ports.CreateEntryInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Hours:      req.Hours,
		Note:       req.Note,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Update handles PUT /api/wpisy/:id. Crew lead only.
//
// @Summary      Update a time entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Entry id"
// @Param        body  body      updateEntryRequest  true  "Fields to change"
// @Success      200   {object}  domain.TimeEntry
// @Failure      404   {object}  map[string]string
// @Router       /api/wpisy/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEntryInput{
		Hours: req.Hours,
		Note:  req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/wpisy/:id. Crew lead only.
//
// @Summary      Delete a time entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  successResponse
// @Router       /api/wpisy/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
