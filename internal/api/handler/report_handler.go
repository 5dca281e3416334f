package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brygada/work-manager/internal/api/metrics"
	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// ReportHandler serves payroll reports and their CSV export.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate handles GET /api/raport/:rok/:miesiac (month zero-based; the
// response reports the 1-based month).
//
// @Summary      Generate the payroll report for a period
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        rok      path      int  true  "Year"
// @Param        miesiac  path      int  true  "Zero-based month"
// @Success      200      {object}  domain.Report
// @Router       /api/raport/{rok}/{miesiac} [get]
func (h *ReportHandler) Generate(c echo.Context) error {
	year, month := periodParams(c)
	report, err := h.service.Generate(c.Request().Context(), year, month)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.Inc()
	return c.JSON(http.StatusOK, report)
}

// ExportCSV handles GET /api/eksport/csv/:rok/:miesiac and streams the
// period's payroll as a CSV attachment.
//
// @Summary      Export the payroll report as CSV
// @Tags         reports
// @Produce      text/csv
// @Security     BearerAuth
// @Param        rok      path      int  true  "Year"
// @Param        miesiac  path      int  true  "Zero-based month"
// @Success      200      {string}  string
// @Router       /api/eksport/csv/{rok}/{miesiac} [get]
func (h *ReportHandler) ExportCSV(c echo.Context) error {
	year, month := periodParams(c)
	csv, err := h.service.ExportCSV(c.Request().Context(), year, month)
	if err != nil {
		return err
	}

	metrics.ExportsTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", domain.ExportFilename(year, month)))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
