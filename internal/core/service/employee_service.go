package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// EmployeeService implements employee CRUD over the whole-document store.
type EmployeeService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewEmployeeService(store ports.Store, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{store: store, log: log}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if state.Employees == nil {
		return []domain.Employee{}, nil
	}
	return state.Employees, nil
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	position := input.Position
	if position == "" {
		position = domain.DefaultPosition
	}
	rate := input.Rate
	if rate == 0 {
		rate = domain.DefaultHourlyRate
	}

	employee := domain.Employee{
		ID:         newID(),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Position:   position,
		HourlyRate: rate,
		CreatedAt:  domain.Timestamp(time.Now()),
	}
	state.Employees = append(state.Employees, employee)

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", employee.ID).Msg("employee created")
	return &employee, nil
}

// Delete removes the employee with the given id. Deleting an unknown id is
// a no-op; the employee's entries are left in place either way.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := state.Employees[:0]
	for _, e := range state.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	state.Employees = kept

	if err := s.store.Save(ctx, state); err != nil {
		return err
	}

	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// UpdateRate sets the employee's hourly rate. Rate zero or unset falls back
// to the default, matching the create path.
func (s *EmployeeService) UpdateRate(ctx context.Context, id string, rate float64) (*domain.Employee, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	employee, ok := state.FindEmployee(id)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}

	if rate == 0 {
		rate = domain.DefaultHourlyRate
	}
	employee.HourlyRate = rate

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", id).Float64("rate", rate).Msg("hourly rate updated")
	updated := *employee
	return &updated, nil
}

// newID returns a current-time-derived opaque id.
func newID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
