package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/taskbook-api/internal/config"
	"github.com/phrazzld/taskbook-api/internal/platform/postgres"
	"github.com/phrazzld/taskbook-api/internal/platform/sqlite"
	"github.com/phrazzld/taskbook-api/internal/store"
	"gorm.io/gorm"
)

// datastore owns the database handle for the configured driver and hands
// out the matching store implementations.
type datastore struct {
	driver string
	logger *slog.Logger
	pg     *sqlx.DB
	lite   *gorm.DB
}

type stores struct {
	users      store.UserStore
	categories store.CategoryStore
	tasks      store.TaskStore
}

func openDatastore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*datastore, error) {
	ds := &datastore{driver: cfg.Driver, logger: log}

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		ds.pg = db
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		ds.lite = db
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	log.Info("database connection established", slog.String("driver", cfg.Driver))
	return ds, nil
}

func (ds *datastore) stores() stores {
	if ds.pg != nil {
		return stores{
			users:      postgres.NewPostgresUserStore(ds.pg, ds.logger),
			categories: postgres.NewPostgresCategoryStore(ds.pg, ds.logger),
			tasks:      postgres.NewPostgresTaskStore(ds.pg, ds.logger),
		}
	}
	return stores{
		users:      sqlite.NewUserStore(ds.lite, ds.logger),
		categories: sqlite.NewCategoryStore(ds.lite, ds.logger),
		tasks:      sqlite.NewTaskStore(ds.lite, ds.logger),
	}
}

// ensureSchema makes sure the schema is usable before serving. SQLite is
// migrated in place; Postgres must already be at the latest goose version.
func (ds *datastore) ensureSchema(ctx context.Context) error {
	if ds.lite != nil {
		return sqlite.Migrate(ctx, ds.lite, ds.logger)
	}
	return postgres.EnsureMigrated(ctx, ds.pg.DB, ds.logger)
}

// migrate runs a migrate subcommand. SQLite schemas are managed by gorm, so
// only up, status and reset apply there.
func (ds *datastore) migrate(ctx context.Context, command string) error {
	if ds.pg != nil {
		return postgres.Migrate(ctx, ds.pg.DB, command, ds.logger)
	}

	switch command {
	case "up":
		return sqlite.Migrate(ctx, ds.lite, ds.logger)
	case "status":
		tables, err := ds.lite.WithContext(ctx).Migrator().GetTables()
		if err != nil {
			return fmt.Errorf("failed to list sqlite tables: %w", err)
		}
		ds.logger.Info("sqlite schema status", slog.Any("tables", tables))
		return nil
	case "reset":
		if err := sqlite.Reset(ctx, ds.lite); err != nil {
			return err
		}
		return sqlite.Migrate(ctx, ds.lite, ds.logger)
	default:
		return fmt.Errorf("migrate %s is not supported for the sqlite driver", command)
	}
}

// ping reports whether the database answers.
func (ds *datastore) ping(ctx context.Context) error {
	if ds.pg != nil {
		return ds.pg.PingContext(ctx)
	}
	sqlDB, err := ds.lite.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (ds *datastore) Close() error {
	var errs []error
	if ds.pg != nil {
		errs = append(errs, ds.pg.Close())
	}
	if ds.lite != nil {
		errs = append(errs, sqlite.Close(ds.lite))
	}
	return errors.Join(errs...)
}
