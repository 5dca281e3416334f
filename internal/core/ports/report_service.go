package ports

import (
	"context"

	"github.com/brygada/work-manager/internal/core/domain"
)

// ReportService produces payroll reports and their CSV rendering for one
// period, month zero-based.
type ReportService interface {
	Generate(ctx context.Context, year, month int) (*domain.Report, error)
	ExportCSV(ctx context.Context, year, month int) (string, error)
}
