package sqlite

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
	"gorm.io/gorm"
)

// CategoryStore implements store.CategoryStore.
type CategoryStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore creates a category store backed by db.
func NewCategoryStore(db *gorm.DB, log *slog.Logger) *CategoryStore {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryStore{db: db, logger: log.With(slog.String("component", "category_store"))}
}

// Create inserts category and sets its id.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	rec := categoryRecord{Category: category.Category}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		mapped := MapError(err, store.ErrCategoryExists, nil)
		if errors.Is(mapped, store.ErrCategoryExists) {
			return store.ErrCategoryExists
		}
		return store.NewStoreError("category", "create", "insert category", mapped)
	}
	category.ID = rec.ID

	logger.FromContextOrDefault(ctx, s.logger).Debug("category created",
		slog.Int64("category_id", category.ID))
	return nil
}

// List returns every category ordered by id.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	var recs []categoryRecord
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, store.NewStoreError("category", "list", "list categories", MapError(err, nil, nil))
	}

	out := make([]*domain.Category, 0, len(recs))
	for _, r := range recs {
		out = append(out, &domain.Category{ID: r.ID, Category: r.Category})
	}
	return out, nil
}
