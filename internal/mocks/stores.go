package mocks

import (
	"context"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/store"
	"github.com/stretchr/testify/mock"
)

var (
	_ store.UserStore     = (*MockUserStore)(nil)
	_ store.CategoryStore = (*MockCategoryStore)(nil)
	_ store.TaskStore     = (*MockTaskStore)(nil)
)

// MockUserStore is a testify mock of store.UserStore.
type MockUserStore struct {
	mock.Mock
}

// Create is a mock implementation of store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// GetByUsername is a mock implementation of store.UserStore.GetByUsername
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByToken is a mock implementation of store.UserStore.GetByToken
func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.UserStore.Update
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// SetToken is a mock implementation of store.UserStore.SetToken
func (m *MockUserStore) SetToken(ctx context.Context, username string, token *string) error {
	return m.Called(ctx, username, token).Error(0)
}

// MockCategoryStore is a testify mock of store.CategoryStore.
type MockCategoryStore struct {
	mock.Mock
}

// Create is a mock implementation of store.CategoryStore.Create
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

// List is a mock implementation of store.CategoryStore.List
func (m *MockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*domain.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTaskStore is a testify mock of store.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

// Create is a mock implementation of store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

// GetOwned is a mock implementation of store.TaskStore.GetOwned
func (m *MockTaskStore) GetOwned(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	args := m.Called(ctx, owner, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateOwned is a mock implementation of store.TaskStore.UpdateOwned
func (m *MockTaskStore) UpdateOwned(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

// DeleteOwned is a mock implementation of store.TaskStore.DeleteOwned
func (m *MockTaskStore) DeleteOwned(ctx context.Context, owner string, id int64) error {
	return m.Called(ctx, owner, id).Error(0)
}

// Search is a mock implementation of store.TaskStore.Search
func (m *MockTaskStore) Search(
	ctx context.Context,
	filter store.TaskFilter,
	window store.PageWindow,
) ([]*domain.Task, int64, error) {
	args := m.Called(ctx, filter, window)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Get(1).(int64), args.Error(2)
}
