package domain

import (
	"strconv"
	"time"
)

// ApprovalRecord marks one payroll period as finalized. Absence of a record
// means the period is not approved; no history is kept on re-approval.
type ApprovalRecord struct {
	Approved   bool   `json:"zatwierdzony"`
	ApprovedBy string `json:"kto,omitempty"`
	ApprovedAt string `json:"data,omitempty"`
}

// PeriodKey builds the approval map key for a year and zero-based month.
func PeriodKey(year, month int) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(month)
}

// ApprovalStatus looks up the approval record for a period, defaulting to a
// not-approved record when absent.
func ApprovalStatus(approvals map[string]ApprovalRecord, year, month int) ApprovalRecord {
	if rec, ok := approvals[PeriodKey(year, month)]; ok {
		return rec
	}
	return ApprovalRecord{Approved: false}
}

// Approve records the period as approved by the named user, overwriting any
// prior record. It returns the possibly newly allocated map.
func Approve(approvals map[string]ApprovalRecord, year, month int, approver string, now time.Time) (map[string]ApprovalRecord, ApprovalRecord) {
	if approvals == nil {
		approvals = make(map[string]ApprovalRecord)
	}
	rec := ApprovalRecord{
		Approved:   true,
		ApprovedBy: approver,
		ApprovedAt: now.UTC().Format(time.RFC3339),
	}
	approvals[PeriodKey(year, month)] = rec
	return approvals, rec
}

// Revoke removes the approval for a period. Revoking a period that was never
// approved is a no-op.
func Revoke(approvals map[string]ApprovalRecord, year, month int) {
	delete(approvals, PeriodKey(year, month))
}
