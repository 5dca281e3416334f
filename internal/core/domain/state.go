package domain

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrStateNotFound is returned by a store backend when no document exists
// yet. The caller is expected to seed and save an initial state.
var ErrStateNotFound = errors.New("state document not found")

// State is the whole persisted document. Stores load and save it wholesale;
// there are no partial reads or writes.
type State struct {
	Users     []User                    `json:"uzytkownicy"`
	Employees []Employee                `json:"pracownicy"`
	Entries   []TimeEntry               `json:"wpisy"`
	Approvals map[string]ApprovalRecord `json:"zatwierdzenia"`
}

// NewState returns an empty but fully initialised state document.
func NewState() *State {
	return &State{
		Users:     []User{},
		Employees: []Employee{},
		Entries:   []TimeEntry{},
		Approvals: map[string]ApprovalRecord{},
	}
}

// SeedState builds the initial document written on first run: the two fixed
// accounts and otherwise empty collections.
func SeedState() (*State, error) {
	crewLead, err := bcrypt.GenerateFromPassword([]byte("brygadzista123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	accountant, err := bcrypt.GenerateFromPassword([]byte("ksiegowa123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := NewState()
	s.Users = []User{
		{ID: "1", Login: "brygadzista", PasswordHash: string(crewLead), Role: RoleCrewLead, DisplayName: "Brygadzista"},
		{ID: "2", Login: "ksiegowa", PasswordHash: string(accountant), Role: RoleAccountant, DisplayName: "Księgowa"},
	}
	return s, nil
}

// FindUserByLogin returns the first user with the given login.
func (s *State) FindUserByLogin(login string) (*User, bool) {
	for i := range s.Users {
		if s.Users[i].Login == login {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// FindEmployee returns the employee with the given id.
func (s *State) FindEmployee(id string) (*Employee, bool) {
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			return &s.Employees[i], true
		}
	}
	return nil, false
}

// FindEntry returns the entry with the given id.
func (s *State) FindEntry(id string) (*TimeEntry, bool) {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return &s.Entries[i], true
		}
	}
	return nil, false
}

// Timestamp renders a creation/modification instant the way the store
// serialises them.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
