package ports

import (
	"context"

	"github.com/brygada/work-manager/internal/core/domain"
)

// CreateEntryInput carries the fields accepted when recording hours.
// CreatedBy is the display name of the authenticated caller.
type CreateEntryInput struct {
	EmployeeID string
	Date       string
	Hours      float64
	Note       string
	CreatedBy  string
}

// UpdateEntryInput carries the mutable entry fields. Hours zero or unset
// keeps the stored value; a nil Note keeps the stored note while an empty
// non-nil one clears it.
type UpdateEntryInput struct {
	Hours float64
	Note  *string
}

// EntryService defines time-entry use cases.
type EntryService interface {
	ListByPeriod(ctx context.Context, year, month int) ([]domain.TimeEntry, error)
	Create(ctx context.Context, input CreateEntryInput) (*domain.TimeEntry, error)
	Update(ctx context.Context, id string, input UpdateEntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id string) error
}
