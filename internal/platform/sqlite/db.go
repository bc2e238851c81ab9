package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/taskbook-api/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens the SQLite database named by cfg.URL with foreign keys enabled.
// In-memory databases are pinned to a single connection so every query sees
// the same data.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := withForeignKeys(cfg.URL)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite connection pool: %w", err)
	}

	if isMemory(cfg.URL) {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime())
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for all record types.
func Migrate(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	if err := db.WithContext(ctx).AutoMigrate(records...); err != nil {
		return fmt.Errorf("sqlite auto-migrate failed: %w", err)
	}
	log.Info("sqlite schema migrated", slog.Int("tables", len(records)))
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isMemory(url string) bool {
	return strings.Contains(url, ":memory:") || strings.Contains(url, "mode=memory")
}

func withForeignKeys(url string) string {
	if strings.Contains(url, "_foreign_keys") || strings.Contains(url, "_fk=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_foreign_keys=on"
}

// Reset drops every table created by Migrate.
func Reset(ctx context.Context, db *gorm.DB) error {
	m := db.WithContext(ctx).Migrator()
	for i := len(records) - 1; i >= 0; i-- {
		if err := m.DropTable(records[i]); err != nil {
			return fmt.Errorf("failed to drop sqlite table: %w", err)
		}
	}
	return nil
}
