// Package file persists the state document as a single JSON file on disk,
// compatible with the database.json layout the service has always used.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/brygada/work-manager/internal/core/domain"
)

// Store reads and writes the whole document per call. There is no locking;
// concurrent writers race and the last one wins.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(_ context.Context) (*domain.State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	return &state, nil
}

func (s *Store) Save(_ context.Context, state *domain.State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Ping reports whether the state file's directory is reachable. A missing
// file is healthy; it only means the store has not been seeded yet.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat state file: %w", err)
	}
	return nil
}
