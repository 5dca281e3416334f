package ports

import (
	"context"

	"github.com/brygada/work-manager/internal/core/domain"
)

// Store is the persistence port. Both operations are whole-document: Load
// returns the full state and Save replaces it. Backends do not provide
// transactions or partial writes; concurrent savers race and the last
// writer wins.
type Store interface {
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state *domain.State) error
}

// Pinger is implemented by store backends that can report connectivity for
// the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}
