package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
)

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// NewPostgresCategoryStore creates a category store backed by db.
func NewPostgresCategoryStore(db *sqlx.DB, log *slog.Logger) *PostgresCategoryStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

// Create inserts category and sets its generated ID.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowxContext(ctx,
		s.db.Rebind(`INSERT INTO categories (category) VALUES (?) RETURNING id`),
		category.Category,
	).Scan(&category.ID)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			return store.ErrCategoryExists
		}
		log.Error("failed to insert category", slog.String("error", err.Error()))
		return store.NewStoreError("category", "create", "insert category", mapped)
	}

	log.Debug("category created", slog.Int64("category_id", category.ID))
	return nil
}

// List returns all categories ordered by id.
func (s *PostgresCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	if err := s.db.SelectContext(ctx, &categories, `SELECT id, category FROM categories ORDER BY id ASC`); err != nil {
		return nil, store.NewStoreError("category", "list", "list categories", MapError(err))
	}
	return categories, nil
}
