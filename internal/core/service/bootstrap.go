package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// EnsureSeeded writes the initial state document (with the two fixed
// accounts) when the store holds no document yet. Run once at startup.
func EnsureSeeded(ctx context.Context, store ports.Store, log zerolog.Logger) error {
	_, err := store.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStateNotFound) {
		return err
	}

	state, err := domain.SeedState()
	if err != nil {
		return err
	}
	if err := store.Save(ctx, state); err != nil {
		return err
	}

	log.Info().Int("users", len(state.Users)).Msg("store seeded with initial accounts")
	return nil
}
