package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// ApprovalService implements the month-approval ledger over the store.
type ApprovalService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewApprovalService(store ports.Store, log zerolog.Logger) *ApprovalService {
	return &ApprovalService{store: store, log: log}
}

// Status is a pure read; a period without a record reads as not approved.
func (s *ApprovalService) Status(ctx context.Context, year, month int) (domain.ApprovalRecord, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.ApprovalRecord{}, err
	}
	return domain.ApprovalStatus(state.Approvals, year, month), nil
}

// Approve finalizes the period, overwriting any prior record. Re-approval
// keeps no history; only the approver and timestamp change.
func (s *ApprovalService) Approve(ctx context.Context, year, month int, approver string) (domain.ApprovalRecord, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.ApprovalRecord{}, err
	}

	approvals, rec := domain.Approve(state.Approvals, year, month, approver, time.Now())
	state.Approvals = approvals

	if err := s.store.Save(ctx, state); err != nil {
		return domain.ApprovalRecord{}, err
	}

	s.log.Info().Int("year", year).Int("month", month).Str("approver", approver).Msg("period approved")
	return rec, nil
}

// Revoke removes the period's approval; revoking an unapproved period is a
// successful no-op.
func (s *ApprovalService) Revoke(ctx context.Context, year, month int) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	domain.Revoke(state.Approvals, year, month)

	if err := s.store.Save(ctx, state); err != nil {
		return err
	}

	s.log.Info().Int("year", year).Int("month", month).Msg("period approval revoked")
	return nil
}
