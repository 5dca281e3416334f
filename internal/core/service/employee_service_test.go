package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

func TestEmployeeService_Create_Defaults(t *testing.T) {
	store := newStubStore()
	svc := NewEmployeeService(store, zerolog.Nop())

	employee, err := svc.Create(context.Background(), ports.CreateEmployeeInput{
		FirstName: "Jan",
		LastName:  "Kowalski",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if employee.ID == "" {
		t.Fatalf("expected generated id")
	}
	if employee.Position != domain.DefaultPosition {
		t.Fatalf("expected default position, got %q", employee.Position)
	}
	if employee.HourlyRate != domain.DefaultHourlyRate {
		t.Fatalf("expected default rate, got %v", employee.HourlyRate)
	}
	if employee.CreatedAt == "" {
		t.Fatalf("expected creation timestamp")
	}
	if store.saves != 1 {
		t.Fatalf("expected one save, got %d", store.saves)
	}
	if len(store.state.Employees) != 1 {
		t.Fatalf("employee not persisted")
	}
}

func TestEmployeeService_Create_UniqueIDs(t *testing.T) {
	store := newStubStore()
	svc := NewEmployeeService(store, zerolog.Nop())

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		e, err := svc.Create(context.Background(), ports.CreateEmployeeInput{FirstName: "X"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestEmployeeService_Delete_KeepsEntries(t *testing.T) {
	store := newStubStore()
	store.state.Employees = []domain.Employee{{ID: "e1"}, {ID: "e2"}}
	store.state.Entries = []domain.TimeEntry{{ID: "w1", EmployeeID: "e1", Date: "2024-03-05", Hours: 4}}
	svc := NewEmployeeService(store, zerolog.Nop())

	if err := svc.Delete(context.Background(), "e1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(store.state.Employees) != 1 || store.state.Employees[0].ID != "e2" {
		t.Fatalf("unexpected employees after delete: %+v", store.state.Employees)
	}
	// Orphaned entries stay in the store.
	if len(store.state.Entries) != 1 {
		t.Fatalf("entries must survive employee deletion")
	}
}

func TestEmployeeService_Delete_UnknownIsNoOp(t *testing.T) {
	store := newStubStore()
	store.state.Employees = []domain.Employee{{ID: "e1"}}
	svc := NewEmployeeService(store, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete of unknown id must succeed: %v", err)
	}
	if len(store.state.Employees) != 1 {
		t.Fatalf("unexpected employees: %+v", store.state.Employees)
	}
}

func TestEmployeeService_UpdateRate(t *testing.T) {
	store := newStubStore()
	store.state.Employees = []domain.Employee{{ID: "e1", HourlyRate: 20}}
	svc := NewEmployeeService(store, zerolog.Nop())

	employee, err := svc.UpdateRate(context.Background(), "e1", 32.5)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if employee.HourlyRate != 32.5 {
		t.Fatalf("expected rate 32.5, got %v", employee.HourlyRate)
	}
	if store.state.Employees[0].HourlyRate != 32.5 {
		t.Fatalf("rate not persisted")
	}

	// Zero falls back to the default, same as the create path.
	employee, err = svc.UpdateRate(context.Background(), "e1", 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if employee.HourlyRate != domain.DefaultHourlyRate {
		t.Fatalf("expected default rate, got %v", employee.HourlyRate)
	}
}

func TestEmployeeService_UpdateRate_NotFound(t *testing.T) {
	store := newStubStore()
	svc := NewEmployeeService(store, zerolog.Nop())

	if _, err := svc.UpdateRate(context.Background(), "missing", 30); err != domain.ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("failed update must not save")
	}
}
