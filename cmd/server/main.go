package main

import (
	"context"
	"fmt"
	"os"

	"github.com/brygada/work-manager/internal/api"
	"github.com/brygada/work-manager/internal/core/ports"
	"github.com/brygada/work-manager/internal/core/service"
	"github.com/brygada/work-manager/internal/infrastructure/store/file"
	mongostore "github.com/brygada/work-manager/internal/infrastructure/store/mongo"
	redisstore "github.com/brygada/work-manager/internal/infrastructure/store/redis"
	"github.com/brygada/work-manager/internal/pkg/config"
	"github.com/brygada/work-manager/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer cleanup()

	if err := service.EnsureSeeded(ctx, store, log); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	e := api.NewRouter(api.Options{
		Store:        store,
		StoreBackend: cfg.Store.Backend,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	log.Info().
		Str("port", cfg.Port).
		Str("store_backend", cfg.Store.Backend).
		Msg("starting work-manager API")

	return e.Start(":" + cfg.Port)
}

// openStore selects the persistence backend from configuration. All
// backends share the same whole-document load/save semantics.
func openStore(ctx context.Context, cfg *config.Config) (ports.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		return file.New(cfg.Store.File), func() {}, nil

	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return mongostore.NewStore(db), cleanup, nil

	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = client.Close() }
		return redisstore.NewStore(client, cfg.Redis.Key), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
