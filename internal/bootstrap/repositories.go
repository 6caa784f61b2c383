package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/database"
	"github.com/argguild/epgpbot/internal/database/memory"
	"github.com/argguild/epgpbot/internal/database/postgres"
	"github.com/argguild/epgpbot/internal/repository"
)

// Store is satisfied by both storage backends: one value serves every
// repository interface
type Store interface {
	repository.Ledger
	repository.Roster
	repository.Items
	repository.Raids
	repository.Loot
}

// OpenStore opens the configured storage. For postgres it connects, applies
// pending migrations and returns the pool, which the caller must close. The
// memory driver returns a nil pool.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, *pgxpool.Pool, error) {
	if cfg.UsesMemoryStorage() {
		slog.Info(LogMsgStoreOpened, "driver", cfg.StorageDriver)
		return memory.NewStore(), nil, nil
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenDatabase, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)
	slog.Info(LogMsgStoreOpened, "driver", cfg.StorageDriver, "host", cfg.DBHost, "db", cfg.DBName)

	return postgres.NewStore(pool), pool, nil
}
