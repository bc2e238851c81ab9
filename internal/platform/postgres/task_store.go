package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
)

// PostgresTaskStore implements store.TaskStore. Every read and write is
// scoped by owner username.
type PostgresTaskStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a task store backed by db.
func NewPostgresTaskStore(db *sqlx.DB, log *slog.Logger) *PostgresTaskStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Create inserts task and fills in its ID and timestamps.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`
		INSERT INTO tasks (title, description, status, deadline, priority, category_id, username)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`)

	err := s.db.QueryRowxContext(ctx, query,
		task.Title, task.Description, task.Status, task.Deadline,
		task.Priority, task.CategoryID, task.Username,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		log.Debug("failed to insert task",
			slog.String("username", task.Username),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "insert task", MapError(err))
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("username", task.Username))
	return nil
}

// GetOwned loads task id if owner owns it.
func (s *PostgresTaskStore) GetOwned(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	var task domain.Task
	err := s.db.GetContext(ctx, &task,
		s.db.Rebind(`SELECT `+taskColumns+` FROM tasks WHERE username = ? AND id = ?`),
		owner, id)
	if err != nil {
		return nil, notFoundAs(err, store.ErrTaskNotFound)
	}
	return &task, nil
}

// UpdateOwned replaces the mutable fields of task, matching on both ID and
// Username, and refreshes task from the stored row.
func (s *PostgresTaskStore) UpdateOwned(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`
		UPDATE tasks
		SET title = ?, description = ?, status = ?, deadline = ?, priority = ?,
		    category_id = ?, updated_at = NOW()
		WHERE username = ? AND id = ?
		RETURNING ` + taskColumns)

	var updated domain.Task
	err := s.db.GetContext(ctx, &updated, query,
		task.Title, task.Description, task.Status, task.Deadline, task.Priority,
		task.CategoryID, task.Username, task.ID)
	if err != nil {
		mapped := notFoundAs(err, store.ErrTaskNotFound)
		log.Debug("failed to update task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return mapped
	}

	*task = updated
	log.Debug("task updated", slog.Int64("task_id", task.ID))
	return nil
}

// DeleteOwned removes task id if owner owns it.
func (s *PostgresTaskStore) DeleteOwned(ctx context.Context, owner string, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		s.db.Rebind(`DELETE FROM tasks WHERE username = ? AND id = ?`), owner, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "delete", "delete task", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	return nil
}

// Search returns one page of the owner's tasks in ascending id order along
// with the total number of matches. Both queries run in one repeatable-read
// snapshot so the count agrees with the page.
func (s *PostgresTaskStore) Search(
	ctx context.Context,
	filter store.TaskFilter,
	window store.PageWindow,
) ([]*domain.Task, int64, error) {
	where, args := buildTaskWhere(filter)
	tasks := []*domain.Task{}
	var total int64

	err := store.RunInReadOnlyTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `SET TRANSACTION ISOLATION LEVEL REPEATABLE READ`); err != nil {
			return fmt.Errorf("failed to set isolation level: %w", err)
		}

		if err := tx.GetContext(ctx, &total, tx.Rebind(`SELECT COUNT(*) FROM tasks`+where), args...); err != nil {
			return store.NewStoreError("task", "search", "count tasks", MapError(err))
		}
		if total == 0 || window.Skip >= total {
			return nil
		}

		pageArgs := append(append([]any{}, args...), window.Take, window.Skip)
		query := tx.Rebind(`SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY id ASC LIMIT ? OFFSET ?`)
		if err := tx.SelectContext(ctx, &tasks, query, pageArgs...); err != nil {
			return store.NewStoreError("task", "search", "select tasks", MapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}
