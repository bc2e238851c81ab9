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

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page      int
	TotalItem int64
	TotalPage int64
}

// TaskPage is one page of search results.
type TaskPage struct {
	Tasks      []*domain.Task
	Pagination Pagination
}

// TaskService manages tasks on behalf of their owner. A task owned by
// another user is reported exactly like a missing one.
type TaskService interface {
	// Create validates input and stores a new task owned by user.
	Create(ctx context.Context, user *domain.User, input CreateTaskInput) (*domain.Task, error)

	// Get returns the task with taskID if user owns it.
	Get(ctx context.Context, user *domain.User, taskID int64) (*domain.Task, error)

	// Update replaces the mutable fields of the task input.ID if user owns it.
	Update(ctx context.Context, user *domain.User, input UpdateTaskInput) (*domain.Task, error)

	// Remove deletes the task with taskID if user owns it.
	Remove(ctx context.Context, user *domain.User, taskID int64) error

	// Search returns one page of user's tasks, optionally filtered by title.
	Search(ctx context.Context, user *domain.User, query SearchTaskQuery) (*TaskPage, error)
}

type taskServiceImpl struct {
	tasks        store.TaskStore
	createSchema validation.Schema[CreateTaskInput]
	updateSchema validation.Schema[UpdateTaskInput]
	searchSchema validation.Schema[SearchTaskQuery]
	idSchema     validation.Schema[int64]
	logger       *slog.Logger
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	validator *validation.Validator,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if validator == nil {
		return nil, errors.New("validator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:        tasks,
		createSchema: validation.Object[CreateTaskInput](validator),
		updateSchema: validation.Object[UpdateTaskInput](validator),
		searchSchema: validation.Object[SearchTaskQuery](validator),
		idSchema:     validation.PositiveID(validator, "id"),
		logger:       logger.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskServiceImpl) Create(
	ctx context.Context,
	user *domain.User,
	input CreateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return nil, errUnauthenticated()
	}

	input, err := s.createSchema.Validate(input)
	if err != nil {
		log.Debug("task create rejected", slog.String("error", err.Error()))
		return nil, err
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Deadline:    input.Deadline.TimePtr(),
		Priority:    input.Priority,
		CategoryID:  input.CategoryID,
		Username:    user.Username,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, s.storeFailure(log, "create", err)
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("username", user.Username))
	return task, nil
}

func (s *taskServiceImpl) Get(ctx context.Context, user *domain.User, taskID int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return nil, errUnauthenticated()
	}

	taskID, err := s.idSchema.Validate(taskID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetOwned(ctx, user.Username, taskID)
	if err != nil {
		return nil, s.storeFailure(log, "get", err)
	}
	return task, nil
}

func (s *taskServiceImpl) Update(
	ctx context.Context,
	user *domain.User,
	input UpdateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return nil, errUnauthenticated()
	}

	input, err := s.updateSchema.Validate(input)
	if err != nil {
		log.Debug("task update rejected", slog.String("error", err.Error()))
		return nil, err
	}

	task := &domain.Task{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Deadline:    input.Deadline.TimePtr(),
		Priority:    input.Priority,
		CategoryID:  input.CategoryID,
		Username:    user.Username,
	}

	if err := s.tasks.UpdateOwned(ctx, task); err != nil {
		return nil, s.storeFailure(log, "update", err)
	}

	log.Debug("task updated", slog.Int64("task_id", task.ID))
	return task, nil
}

func (s *taskServiceImpl) Remove(ctx context.Context, user *domain.User, taskID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return errUnauthenticated()
	}

	taskID, err := s.idSchema.Validate(taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.DeleteOwned(ctx, user.Username, taskID); err != nil {
		return s.storeFailure(log, "remove", err)
	}

	log.Debug("task removed", slog.Int64("task_id", taskID))
	return nil
}

func (s *taskServiceImpl) Search(
	ctx context.Context,
	user *domain.User,
	query SearchTaskQuery,
) (*TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if user == nil {
		return nil, errUnauthenticated()
	}

	query, err := s.searchSchema.Validate(query)
	if err != nil {
		log.Debug("task search rejected", slog.String("error", err.Error()))
		return nil, err
	}

	page, size := *query.Page, *query.Size
	filter := store.TaskFilter{Owner: user.Username, Title: query.Title}

	tasks, total, err := s.tasks.Search(ctx, filter, store.NewPageWindow(page, size))
	if err != nil {
		return nil, s.storeFailure(log, "search", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	return &TaskPage{
		Tasks: tasks,
		Pagination: Pagination{
			Page:      page,
			TotalItem: total,
			TotalPage: store.TotalPages(total, size),
		},
	}, nil
}

// storeFailure translates a store error and logs it at a level matching
// whether the caller or the system is at fault.
func (s *taskServiceImpl) storeFailure(log *slog.Logger, operation string, err error) error {
	translated := translateStoreError("task", operation, "task", err)

	var svcErr *ServiceError
	if errors.As(translated, &svcErr) {
		log.Error("task store failure",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
	} else {
		log.Debug("task request failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
	}
	return translated
}
