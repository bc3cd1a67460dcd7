package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/usersapi/internal/config"
	"github.com/polkiloo/usersapi/internal/domain/repository"
	"github.com/polkiloo/usersapi/internal/storage/memory"
	"github.com/polkiloo/usersapi/internal/storage/postgres"
)

// Module wires the user repository: PostgreSQL when a DSN is configured,
// process memory otherwise.
var Module = fx.Module("storage",
	fx.Provide(newUserRepository),
)

type repositoryParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

var openPostgres = postgres.New

func newUserRepository(p repositoryParams) (repository.UserRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory user storage")
		return memory.New().Users(), nil
	}

	storage, err := openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, fmt.Errorf("open postgres storage: %w", err)
	}
	p.Logger.Info("using postgres user storage")
	registerLifecycle(p.Lifecycle, storage)
	return storage.Users(), nil
}

func registerLifecycle(lc fx.Lifecycle, storage *postgres.Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("postgres health check: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
