package api

import (
	"context"

	"github.com/brygada/work-manager/internal/api/metrics"
	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// instrumentedStore wraps a Store and counts successful saves per backend.
// Failed saves are not counted; reads pass through untouched.
type instrumentedStore struct {
	inner   ports.Store
	backend string
}

func instrumentStore(inner ports.Store, backend string) ports.Store {
	return &instrumentedStore{inner: inner, backend: backend}
}

func (s *instrumentedStore) Load(ctx context.Context) (*domain.State, error) {
	return s.inner.Load(ctx)
}

func (s *instrumentedStore) Save(ctx context.Context, state *domain.State) error {
	if err := s.inner.Save(ctx, state); err != nil {
		return err
	}
	metrics.StoreSavesTotal.WithLabelValues(s.backend).Inc()
	return nil
}
