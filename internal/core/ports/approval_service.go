package ports

import (
	"context"

	"github.com/brygada/work-manager/internal/core/domain"
)

// ApprovalService tracks per-period payroll finalization. All operations are
// keyed by (year, zero-based month).
type ApprovalService interface {
	Status(ctx context.Context, year, month int) (domain.ApprovalRecord, error)
	Approve(ctx context.Context, year, month int, approver string) (domain.ApprovalRecord, error)
	Revoke(ctx context.Context, year, month int) error
}
