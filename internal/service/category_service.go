package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
	"github.com/phrazzld/taskbook-api/internal/validation"
)

// CategoryService manages the shared, append-only category list.
type CategoryService interface {
	// Create validates input and stores a new category.
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)

	// List returns all categories ordered by id.
	List(ctx context.Context) ([]*domain.Category, error)
}

type categoryServiceImpl struct {
	categories store.CategoryStore
	schema     validation.Schema[CreateCategoryInput]
	logger     *slog.Logger
}

var _ CategoryService = (*categoryServiceImpl)(nil)

// NewCategoryService creates a CategoryService.
func NewCategoryService(
	categories store.CategoryStore,
	validator *validation.Validator,
	logger *slog.Logger,
) (CategoryService, error) {
	if categories == nil {
		return nil, errors.New("category store cannot be nil")
	}
	if validator == nil {
		return nil, errors.New("validator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &categoryServiceImpl{
		categories: categories,
		schema:     validation.Object[CreateCategoryInput](validator),
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input, err := s.schema.Validate(input)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{Category: input.Category}
	if err := s.categories.Create(ctx, category); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("duplicate category", slog.String("category", input.Category))
		} else {
			log.Error("failed to create category", slog.String("error", err.Error()))
		}
		return nil, translateStoreError("category", "create", "category", err)
	}

	log.Debug("category created", slog.Int64("category_id", category.ID))
	return category, nil
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list categories",
			slog.String("error", err.Error()))
		return nil, NewServiceError("category", "list", err)
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return categories, nil
}
