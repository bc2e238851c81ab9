package store

import (
	"context"

	"github.com/phrazzld/taskbook-api/internal/domain"
)

// TaskFilter narrows a task search. Owner is always applied; Title, when
// non-nil, is a case-sensitive substring match.
type TaskFilter struct {
	Owner string
	Title *string
}

// TaskStore defines the interface for task persistence. Every method except
// Create is scoped to an owner, and a task owned by someone else behaves
// exactly like a missing one.
type TaskStore interface {
	// Create inserts the task and fills ID, CreatedAt and UpdatedAt.
	// Returns ErrUnknownCategory if CategoryID references nothing.
	Create(ctx context.Context, task *domain.Task) error

	// GetOwned retrieves task id if owner owns it.
	// Returns ErrTaskNotFound otherwise.
	GetOwned(ctx context.Context, owner string, id int64) (*domain.Task, error)

	// UpdateOwned replaces the mutable fields of the task identified by
	// task.ID and task.Username in a single conditional statement, then
	// refreshes task from the stored row.
	// Returns ErrTaskNotFound if zero rows matched.
	UpdateOwned(ctx context.Context, task *domain.Task) error

	// DeleteOwned removes task id if owner owns it.
	// Returns ErrTaskNotFound if zero rows matched.
	DeleteOwned(ctx context.Context, owner string, id int64) error

	// Search returns at most window.Take tasks matching filter after skipping
	// window.Skip, ordered by id ascending, together with the total number of
	// matching tasks. Both are read from the same snapshot.
	Search(ctx context.Context, filter TaskFilter, window PageWindow) ([]*domain.Task, int64, error)
}
