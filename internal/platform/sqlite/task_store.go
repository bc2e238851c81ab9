package sqlite

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/platform/logger"
	"github.com/phrazzld/taskbook-api/internal/store"
	"gorm.io/gorm"
)

// TaskStore implements store.TaskStore. Every query is scoped by owner.
type TaskStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a task store backed by db.
func NewTaskStore(db *gorm.DB, log *slog.Logger) *TaskStore {
	if log == nil {
		log = slog.Default()
	}
	return &TaskStore{db: db, logger: log.With(slog.String("component", "task_store"))}
}

// Create inserts task and fills in its id and timestamps.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	rec := taskFromDomain(task)
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("failed to insert task",
			slog.String("username", task.Username),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "insert task", MapError(err, nil, store.ErrUnknownCategory))
	}

	task.ID = rec.ID
	task.CreatedAt = rec.CreatedAt
	task.UpdatedAt = rec.UpdatedAt
	return nil
}

// GetOwned returns the task with id if owner holds it.
func (s *TaskStore) GetOwned(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	return getOwned(s.db.WithContext(ctx), owner, id)
}

func getOwned(db *gorm.DB, owner string, id int64) (*domain.Task, error) {
	var rec taskRecord
	err := db.Where("username = ? AND id = ?", owner, id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("task", "get", "load task", MapError(err, nil, nil))
	}
	return rec.toDomain(), nil
}

// UpdateOwned replaces the mutable fields of an owned task and reloads it.
func (s *TaskStore) UpdateOwned(ctx context.Context, task *domain.Task) error {
	var updated *domain.Task

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&taskRecord{}).
			Where("username = ? AND id = ?", task.Username, task.ID).
			Updates(map[string]any{
				"title":       task.Title,
				"description": task.Description,
				"status":      string(task.Status),
				"deadline":    task.Deadline,
				"priority":    task.Priority,
				"category_id": task.CategoryID,
				"updated_at":  time.Now().UTC(),
			})
		if result.Error != nil {
			return MapError(result.Error, nil, store.ErrUnknownCategory)
		}
		if result.RowsAffected == 0 {
			return store.ErrTaskNotFound
		}

		var err error
		updated, err = getOwned(tx, task.Username, task.ID)
		return err
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("failed to update task",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return err
	}

	*task = *updated
	return nil
}

// DeleteOwned removes the task with id if owner holds it.
func (s *TaskStore) DeleteOwned(ctx context.Context, owner string, id int64) error {
	result := s.db.WithContext(ctx).
		Where("username = ? AND id = ?", owner, id).
		Delete(&taskRecord{})
	if result.Error != nil {
		return store.NewStoreError("task", "delete", "delete task", MapError(result.Error, nil, nil))
	}
	if result.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted", slog.Int64("task_id", id))
	return nil
}

// ownedBy scopes a query to filter. Title matching is case-sensitive.
func ownedBy(filter store.TaskFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("username = ?", filter.Owner)
		if filter.Title != nil && *filter.Title != "" {
			db = db.Where("instr(title, ?) > 0", *filter.Title)
		}
		return db
	}
}

// Search counts and pages the owner's tasks inside one transaction.
func (s *TaskStore) Search(
	ctx context.Context,
	filter store.TaskFilter,
	window store.PageWindow,
) ([]*domain.Task, int64, error) {
	var (
		recs  []taskRecord
		total int64
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&taskRecord{}).Scopes(ownedBy(filter)).Count(&total).Error; err != nil {
			return err
		}
		if total == 0 || window.Skip >= total {
			return nil
		}
		return tx.Scopes(ownedBy(filter)).
			Order("id ASC").
			Limit(window.Take).
			Offset(int(window.Skip)).
			Find(&recs).Error
	})
	if err != nil {
		return nil, 0, store.NewStoreError("task", "search", "search tasks", MapError(err, nil, nil))
	}

	tasks := make([]*domain.Task, 0, len(recs))
	for i := range recs {
		tasks = append(tasks, recs[i].toDomain())
	}
	return tasks, total, nil
}
