package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/mocks"
	"github.com/phrazzld/taskbook-api/internal/service"
	"github.com/phrazzld/taskbook-api/internal/store"
	"github.com/phrazzld/taskbook-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alice = &domain.User{Username: "alice", Name: "Alice"}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func newTaskService(t *testing.T) (service.TaskService, *mocks.MockTaskStore) {
	t.Helper()
	tasks := &mocks.MockTaskStore{}
	svc, err := service.NewTaskService(tasks, validation.New(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { tasks.AssertExpectations(t) })
	return svc, tasks
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	for _, f := range vErr.Fields {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("no validation message for %q in %v", field, vErr)
}

func TestNewTaskService_RequiresDependencies(t *testing.T) {
	_, err := service.NewTaskService(nil, validation.New(), nil)
	assert.Error(t, err)
	_, err = service.NewTaskService(&mocks.MockTaskStore{}, nil, nil)
	assert.Error(t, err)
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	deadline := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("stamps owner and default status", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Create", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Username == "alice" && task.Status == domain.TaskStatusNotStarted
		})).Run(func(args mock.Arguments) {
			task := args.Get(1).(*domain.Task)
			task.ID = 1
			task.CreatedAt = deadline
			task.UpdatedAt = deadline
		}).Return(nil).Once()

		task, err := svc.Create(ctx, alice, service.CreateTaskInput{
			Title:       "test",
			Description: "test description",
			Deadline:    service.NewDate(deadline),
			Priority:    intPtr(1),
			CategoryID:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), task.ID)
		assert.Equal(t, "test", task.Title)
		assert.Equal(t, "test description", task.Description)
		assert.Equal(t, domain.TaskStatusNotStarted, task.Status)
		assert.Equal(t, deadline, *task.Deadline)
		assert.Equal(t, 1, *task.Priority)
		assert.Equal(t, int64(3), task.CategoryID)
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil).Once()

		task, err := svc.Create(ctx, alice, service.CreateTaskInput{
			Title: "t", Description: "d", Status: domain.TaskStatusOnProgress, CategoryID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusOnProgress, task.Status)
	})

	t.Run("rejects invalid fields without touching the store", func(t *testing.T) {
		svc, _ := newTaskService(t)

		_, err := svc.Create(ctx, alice, service.CreateTaskInput{
			Title:       "",
			Description: string(make([]byte, 256)),
			Status:      "INVALID",
			Priority:    intPtr(-1),
		})
		require.Error(t, err)
		for _, field := range []string{"title", "description", "status", "priority", "category_id"} {
			requireFieldError(t, err, field)
		}
	})

	t.Run("priority must fit the datastore column", func(t *testing.T) {
		svc, tasks := newTaskService(t)

		_, err := svc.Create(ctx, alice, service.CreateTaskInput{
			Title: "t", Description: "d", CategoryID: 1, Priority: intPtr(2147483648),
		})
		requireFieldError(t, err, "priority")

		tasks.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil).Once()
		task, err := svc.Create(ctx, alice, service.CreateTaskInput{
			Title: "t", Description: "d", CategoryID: 1, Priority: intPtr(2147483647),
		})
		require.NoError(t, err)
		assert.Equal(t, 2147483647, *task.Priority)
	})

	t.Run("unknown category is a validation error", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Create", ctx, mock.Anything).Return(store.ErrUnknownCategory).Once()

		_, err := svc.Create(ctx, alice, service.CreateTaskInput{Title: "t", Description: "d", CategoryID: 99})
		requireFieldError(t, err, "category_id")
	})

	t.Run("store failure is internal", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		cause := errors.New("connection refused")
		tasks.On("Create", ctx, mock.Anything).Return(cause).Once()

		_, err := svc.Create(ctx, alice, service.CreateTaskInput{Title: "t", Description: "d", CategoryID: 1})
		var svcErr *service.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.ErrorIs(t, err, cause)
		assert.False(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("requires a user", func(t *testing.T) {
		svc, _ := newTaskService(t)
		_, err := svc.Create(ctx, nil, service.CreateTaskInput{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestTaskService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("owned task", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		want := &domain.Task{ID: 5, Title: "mine", Username: "alice"}
		tasks.On("GetOwned", ctx, "alice", int64(5)).Return(want, nil).Once()

		got, err := svc.Get(ctx, alice, 5)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("foreign or missing task is not found", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("GetOwned", ctx, "alice", int64(6)).Return(nil, store.ErrTaskNotFound).Once()

		_, err := svc.Get(ctx, alice, 6)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "task not found", err.Error())
	})

	t.Run("non-positive id", func(t *testing.T) {
		svc, _ := newTaskService(t)
		for _, id := range []int64{0, -3} {
			_, err := svc.Get(ctx, alice, id)
			requireFieldError(t, err, "id")
		}
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	input := service.UpdateTaskInput{ID: 4, Title: "new", Description: "desc", CategoryID: 2}

	t.Run("full replacement scoped to owner", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("UpdateOwned", ctx, mock.MatchedBy(func(task *domain.Task) bool {
			return task.ID == 4 && task.Username == "alice" &&
				task.Status == domain.TaskStatusNotStarted && task.Priority == nil
		})).Return(nil).Twice()

		first, err := svc.Update(ctx, alice, input)
		require.NoError(t, err)
		second, err := svc.Update(ctx, alice, input)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("foreign task is not found", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("UpdateOwned", ctx, mock.Anything).Return(store.ErrTaskNotFound).Once()

		_, err := svc.Update(ctx, alice, input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := newTaskService(t)
		bad := input
		bad.ID = 0
		_, err := svc.Update(ctx, alice, bad)
		requireFieldError(t, err, "id")
	})
}

func TestTaskService_Remove(t *testing.T) {
	ctx := context.Background()

	svc, tasks := newTaskService(t)
	tasks.On("DeleteOwned", ctx, "alice", int64(8)).Return(nil).Once()
	tasks.On("DeleteOwned", ctx, "alice", int64(9)).Return(store.ErrTaskNotFound).Once()

	assert.NoError(t, svc.Remove(ctx, alice, 8))
	assert.ErrorIs(t, svc.Remove(ctx, alice, 9), domain.ErrNotFound)
	requireFieldError(t, svc.Remove(ctx, alice, 0), "id")
}

func TestTaskService_Search(t *testing.T) {
	ctx := context.Background()

	makeTasks := func(n int) []*domain.Task {
		out := make([]*domain.Task, n)
		for i := range out {
			out[i] = &domain.Task{ID: int64(i + 1), Username: "alice"}
		}
		return out
	}

	t.Run("defaults to first page of ten", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Search", ctx,
			store.TaskFilter{Owner: "alice"},
			store.PageWindow{Skip: 0, Take: 10},
		).Return(makeTasks(10), int64(15), nil).Once()

		page, err := svc.Search(ctx, alice, service.SearchTaskQuery{})
		require.NoError(t, err)
		assert.Len(t, page.Tasks, 10)
		assert.Equal(t, service.Pagination{Page: 1, TotalItem: 15, TotalPage: 2}, page.Pagination)
	})

	t.Run("second page with title filter", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Search", ctx,
			store.TaskFilter{Owner: "alice", Title: strPtr("test 1")},
			store.PageWindow{Skip: 5, Take: 5},
		).Return(makeTasks(2), int64(7), nil).Once()

		page, err := svc.Search(ctx, alice, service.SearchTaskQuery{
			Page: intPtr(2), Size: intPtr(5), Title: strPtr("test 1"),
		})
		require.NoError(t, err)
		assert.Len(t, page.Tasks, 2)
		assert.Equal(t, service.Pagination{Page: 2, TotalItem: 7, TotalPage: 2}, page.Pagination)
	})

	t.Run("page past the end keeps totals", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Search", ctx, store.TaskFilter{Owner: "alice"}, store.PageWindow{Skip: 40, Take: 10}).
			Return(nil, int64(15), nil).Once()

		page, err := svc.Search(ctx, alice, service.SearchTaskQuery{Page: intPtr(5)})
		require.NoError(t, err)
		assert.NotNil(t, page.Tasks)
		assert.Empty(t, page.Tasks)
		assert.Equal(t, service.Pagination{Page: 5, TotalItem: 15, TotalPage: 2}, page.Pagination)
	})

	t.Run("empty title is no filter", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.On("Search", ctx, store.TaskFilter{Owner: "alice"}, store.PageWindow{Skip: 0, Take: 10}).
			Return([]*domain.Task{}, int64(0), nil).Once()

		page, err := svc.Search(ctx, alice, service.SearchTaskQuery{Title: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, int64(0), page.Pagination.TotalPage)
	})

	t.Run("rejects out of range page and size", func(t *testing.T) {
		svc, _ := newTaskService(t)

		_, err := svc.Search(ctx, alice, service.SearchTaskQuery{Page: intPtr(0)})
		requireFieldError(t, err, "page")

		_, err = svc.Search(ctx, alice, service.SearchTaskQuery{Size: intPtr(101)})
		requireFieldError(t, err, "size")

		_, err = svc.Search(ctx, alice, service.SearchTaskQuery{Size: intPtr(0)})
		requireFieldError(t, err, "size")
	})
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    time.Time
		wantErr bool
	}{
		{"date only", `{"deadline":"2024-05-01"}`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", `{"deadline":"2024-05-01T09:30:00Z"}`, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), false},
		{"with offset", `{"deadline":"2024-05-01T09:30:00+02:00"}`, time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC), false},
		{"not a date", `{"deadline":"next week"}`, time.Time{}, true},
		{"number", `{"deadline":20240501}`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input service.CreateTaskInput
			err := json.Unmarshal([]byte(tt.body), &input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, input.Deadline)
			assert.True(t, tt.want.Equal(input.Deadline.Time), "got %v", input.Deadline.Time)
		})
	}

	var input service.CreateTaskInput
	require.NoError(t, json.Unmarshal([]byte(`{"deadline":null}`), &input))
	assert.Nil(t, input.Deadline)
	assert.Nil(t, input.Deadline.TimePtr())
}
