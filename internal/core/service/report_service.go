package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// ReportService runs the payroll aggregation over a fresh store snapshot.
type ReportService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewReportService(store ports.Store, log zerolog.Logger) *ReportService {
	return &ReportService{store: store, log: log}
}

// Generate computes the payroll report for (year, month), month zero-based.
func (s *ReportService) Generate(ctx context.Context, year, month int) (*domain.Report, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.ComputeReport(state.Employees, state.Entries, state.Approvals, year, month)

	s.log.Debug().
		Int("year", year).
		Int("month", month).
		Int("employees", len(report.Lines)).
		Float64("total_hours", report.Totals.Hours).
		Msg("report generated")
	return report, nil
}

// ExportCSV renders the period's report as CSV text.
func (s *ReportService) ExportCSV(ctx context.Context, year, month int) (string, error) {
	report, err := s.Generate(ctx, year, month)
	if err != nil {
		return "", err
	}
	return domain.FormatCSV(report), nil
}
