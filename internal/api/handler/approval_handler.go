package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brygada/work-manager/internal/api/metrics"
	"github.com/brygada/work-manager/internal/core/ports"
)

// ApprovalHandler handles month-approval requests.
type ApprovalHandler struct {
	service ports.ApprovalService
}

func NewApprovalHandler(service ports.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

// Status handles GET /api/zatwierdzenie/:rok/:miesiac.
//
// @Summary      Get the approval status for a period
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Param        rok      path      int  true  "Year"
// @Param        miesiac  path      int  true  "Zero-based month"
// @Success      200      {object}  domain.ApprovalRecord
// @Router       /api/zatwierdzenie/{rok}/{miesiac} [get]
func (h *ApprovalHandler) Status(c echo.Context) error {
	year, month := periodParams(c)
	rec, err := h.service.Status(c.Request().Context(), year, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// Approve handles POST /api/zatwierdzenie/:rok/:miesiac. Accountant only.
//
// @Summary      Approve a period's payroll
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Param        rok      path      int  true  "Year"
// @Param        miesiac  path      int  true  "Zero-based month"
// @Success      200      {object}  domain.ApprovalRecord
// @Router       /api/zatwierdzenie/{rok}/{miesiac} [post]
func (h *ApprovalHandler) Approve(c echo.Context) error {
	approver, err := ctxDisplayName(c)
	if err != nil {
		return err
	}

	year, month := periodParams(c)
	rec, err := h.service.Approve(c.Request().Context(), year, month, approver)
	if err != nil {
		return err
	}

	metrics.ApprovalActionsTotal.WithLabelValues("approve").Inc()
	return c.JSON(http.StatusOK, rec)
}

// Revoke handles DELETE /api/zatwierdzenie/:rok/:miesiac. Accountant only.
// Revoking a period that was never approved succeeds as a no-op.
//
// @Summary      Revoke a period's approval
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Param        rok      path      int  true  "Year"
// @Param        miesiac  path      int  true  "Zero-based month"
// @Success      200      {object}  successResponse
// @Router       /api/zatwierdzenie/{rok}/{miesiac} [delete]
func (h *ApprovalHandler) Revoke(c echo.Context) error {
	year, month := periodParams(c)
	if err := h.service.Revoke(c.Request().Context(), year, month); err != nil {
		return err
	}

	metrics.ApprovalActionsTotal.WithLabelValues("revoke").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
