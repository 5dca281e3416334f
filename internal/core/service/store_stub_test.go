package service

import (
	"context"
	"encoding/json"

	"github.com/brygada/work-manager/internal/core/domain"
)

// stubStore is an in-memory Store that deep-copies the document on every
// call, so a service only changes visible state by calling Save.
type stubStore struct {
	state   *domain.State
	loadErr error
	saveErr error
	saves   int
}

func newStubStore() *stubStore {
	return &stubStore{state: domain.NewState()}
}

func cloneState(s *domain.State) *domain.State {
	raw, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	var out domain.State
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

func (s *stubStore) Load(_ context.Context) (*domain.State, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return cloneState(s.state), nil
}

func (s *stubStore) Save(_ context.Context, state *domain.State) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.state = cloneState(state)
	s.saves++
	return nil
}
