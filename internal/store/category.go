package store

import (
	"context"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
// Categories are append-only.
type CategoryStore interface {
	// Create inserts the category and sets its generated ID.
	// Returns ErrCategoryExists if the name is taken.
	Create(ctx context.Context, category *domain.Category) error

	// List returns every category ordered by id.
	List(ctx context.Context) ([]*domain.Category, error)
}
