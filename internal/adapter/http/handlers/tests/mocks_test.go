package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"todoapp/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTodos(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CategorizedTodos(ctx context.Context, ownerID uint64, today time.Time) (domain.Buckets, error) {
	args := m.Called(ctx, ownerID, today)
	return args.Get(0).(domain.Buckets), args.Error(1)
}

func (m *taskServiceMock) CreateTodo(ctx context.Context, ownerID uint64, title, dueDate string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, title, dueDate)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTodo(ctx context.Context, ownerID, id uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, ownerID, id, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetCompletion(ctx context.Context, ownerID, id uint64, completed bool) (domain.Task, error) {
	args := m.Called(ctx, ownerID, id, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTodo(ctx context.Context, ownerID, id uint64) (int64, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(int64), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Signup(ctx context.Context, in domain.SignupInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) UserByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) DeleteAccount(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
