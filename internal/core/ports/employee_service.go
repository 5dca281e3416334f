package ports

import (
	"context"

	"github.com/brygada/work-manager/internal/core/domain"
)

// CreateEmployeeInput carries the fields accepted when adding an employee.
// Rate zero or unset falls back to the default; Position empty falls back
// to the default position.
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	Position  string
	Rate      float64
}

// EmployeeService defines employee CRUD use cases.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	UpdateRate(ctx context.Context, id string, rate float64) (*domain.Employee, error)
}
