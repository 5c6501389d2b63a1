package app

import (
	"context"
	"fmt"

	"github.com/Astemirdum/court-booking/booking/config"
	"github.com/Astemirdum/court-booking/booking/internal/repository"
	pg_migrations "github.com/Astemirdum/court-booking/booking/migrations/postgres"
	sqlite_migrations "github.com/Astemirdum/court-booking/booking/migrations/sqlite"
	"github.com/Astemirdum/court-booking/pkg/postgres"
	"github.com/Astemirdum/court-booking/pkg/sqlite"
	"go.uber.org/zap"
)

type storage struct {
	repo  repository.Repository
	close func()
}

// openStorage picks the backend once at startup.
func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.SQLite, log)
	case config.DriverPostgres, "":
		st, err := openPostgres(ctx, &cfg.Database, log)
		if err == nil {
			return st, nil
		}
		if !cfg.Storage.Fallback {
			return storage{}, err
		}
		log.Warn("postgres unavailable, falling back to sqlite",
			zap.String("path", cfg.SQLite.Path), zap.Error(err))
		return openSQLite(ctx, cfg.SQLite, log)
	default:
		return storage{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(ctx context.Context, cfg *postgres.DB, log *zap.Logger) (storage, error) {
	db, err := postgres.NewPostgresDB(ctx, cfg, pg_migrations.MigrationFiles)
	if err != nil {
		return storage{}, fmt.Errorf("postgres: %w", err)
	}
	repo, err := repository.NewPostgres(db, log)
	if err != nil {
		db.Close()
		return storage{}, err
	}
	return storage{repo: repo, close: db.Close}, nil
}

func openSQLite(ctx context.Context, cfg sqlite.Config, log *zap.Logger) (storage, error) {
	db, err := sqlite.NewSQLiteDB(ctx, cfg, sqlite_migrations.MigrationFiles)
	if err != nil {
		return storage{}, fmt.Errorf("sqlite: %w", err)
	}
	repo, err := repository.NewSQLite(db, log)
	if err != nil {
		_ = db.Close()
		return storage{}, err
	}
	return storage{
		repo: repo,
		close: func() {
			if err := db.Close(); err != nil {
				log.Error("sqlite close", zap.Error(err))
			}
		},
	}, nil
}
