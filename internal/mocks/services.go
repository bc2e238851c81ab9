package mocks

import (
	"context"

	"github.com/phrazzld/taskbook-api/internal/domain"
	"github.com/phrazzld/taskbook-api/internal/service"
	"github.com/stretchr/testify/mock"
)

var (
	_ service.UserService     = (*MockUserService)(nil)
	_ service.CategoryService = (*MockCategoryService)(nil)
	_ service.TaskService     = (*MockTaskService)(nil)
)

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*domain.User, error) {
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, input service.RegisterUserInput) (*domain.User, error) {
	return m.user(m.Called(ctx, input))
}

func (m *MockUserService) Login(ctx context.Context, input service.LoginUserInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Current(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.user(m.Called(ctx, user))
}

func (m *MockUserService) Update(
	ctx context.Context,
	user *domain.User,
	input service.UpdateUserInput,
) (*domain.User, error) {
	return m.user(m.Called(ctx, user, input))
}

func (m *MockUserService) Logout(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserService) ResolveByToken(ctx context.Context, token string) (*domain.User, error) {
	return m.user(m.Called(ctx, token))
}

// MockCategoryService is a testify mock of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, input service.CreateCategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, input)
	if c, ok := args.Get(0).(*domain.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]*domain.Category); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTaskService is a testify mock of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) task(args mock.Arguments) (*domain.Task, error) {
	if t, ok := args.Get(0).(*domain.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, user *domain.User, input service.CreateTaskInput) (*domain.Task, error) {
	return m.task(m.Called(ctx, user, input))
}

func (m *MockTaskService) Get(ctx context.Context, user *domain.User, taskID int64) (*domain.Task, error) {
	return m.task(m.Called(ctx, user, taskID))
}

func (m *MockTaskService) Update(ctx context.Context, user *domain.User, input service.UpdateTaskInput) (*domain.Task, error) {
	return m.task(m.Called(ctx, user, input))
}

func (m *MockTaskService) Remove(ctx context.Context, user *domain.User, taskID int64) error {
	return m.Called(ctx, user, taskID).Error(0)
}

func (m *MockTaskService) Search(
	ctx context.Context,
	user *domain.User,
	query service.SearchTaskQuery,
) (*service.TaskPage, error) {
	args := m.Called(ctx, user, query)
	if p, ok := args.Get(0).(*service.TaskPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
