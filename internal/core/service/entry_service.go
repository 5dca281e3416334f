package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// EntryService implements time-entry CRUD over the whole-document store.
type EntryService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewEntryService(store ports.Store, log zerolog.Logger) *EntryService {
	return &EntryService{store: store, log: log}
}

// ListByPeriod returns the entries dated in (year, month), month zero-based.
// Entries with unparseable dates are excluded, never reported as errors.
func (s *EntryService) ListByPeriod(ctx context.Context, year, month int) ([]domain.TimeEntry, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterEntries(state.Entries, year, month), nil
}

func (s *EntryService) Create(ctx context.Context, input ports.CreateEntryInput) (*domain.TimeEntry, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry := domain.TimeEntry{
		ID:         newID(),
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		Hours:      input.Hours,
		Note:       input.Note,
		CreatedBy:  input.CreatedBy,
		CreatedAt:  domain.Timestamp(time.Now()),
	}
	state.Entries = append(state.Entries, entry)

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("entry_id", entry.ID).
		Str("employee_id", entry.EmployeeID).
		Float64("hours", entry.Hours).
		Msg("entry created")
	return &entry, nil
}

// Update mutates an existing entry. Hours zero or unset keeps the stored
// value; the note is replaced only when present in the request.
func (s *EntryService) Update(ctx context.Context, id string, input ports.UpdateEntryInput) (*domain.TimeEntry, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := state.FindEntry(id)
	if !ok {
		return nil, domain.ErrEntryNotFound
	}

	if input.Hours != 0 {
		entry.Hours = input.Hours
	}
	if input.Note != nil {
		entry.Note = *input.Note
	}
	entry.ModifiedAt = domain.Timestamp(time.Now())

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info().Str("entry_id", id).Msg("entry updated")
	updated := *entry
	return &updated, nil
}

// Delete removes the entry with the given id; unknown ids are a no-op.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := state.Entries[:0]
	for _, e := range state.Entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	state.Entries = kept

	if err := s.store.Save(ctx, state); err != nil {
		return err
	}

	s.log.Info().Str("entry_id", id).Msg("entry deleted")
	return nil
}
