package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todoapp/internal/app/service"
	"todoapp/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id, ownerID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, ownerID uint64, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id, ownerID uint64) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func defaultPolicy() domain.TaskPolicy {
	return domain.TaskPolicy{MinTitleLength: 1}
}

func TestTaskService_CreateTodo_Valid(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	due, _ := time.Parse(domain.DateLayout, "2025-09-07")
	repo.On("Create", mock.Anything, uint64(7), domain.CreateTaskInput{Title: "Test Todo", DueDate: &due}).
		Return(domain.Task{ID: 1, OwnerID: 7, Title: "Test Todo", DueDate: &due}, nil).Once()

	task, err := svc.CreateTodo(context.Background(), 7, "  Test Todo  ", "2025-09-07")
	require.NoError(t, err)
	require.Equal(t, uint64(1), task.ID)
	require.False(t, task.Completed)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTodo_ValidationSkipsRepository(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	_, err := svc.CreateTodo(context.Background(), 7, "", "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create")
}

func TestTaskService_SetCompletion_Idempotent(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	pending := domain.Task{ID: 3, OwnerID: 7, Title: "toggle me"}
	done := pending
	done.Completed = true

	repo.On("FindByID", mock.Anything, uint64(3), uint64(7)).Return(pending, nil).Once()
	repo.On("Update", mock.Anything, done).Return(done, nil).Once()

	first, err := svc.SetCompletion(context.Background(), 7, 3, true)
	require.NoError(t, err)
	require.True(t, first.Completed)

	// Second call with the same boolean writes the same state again.
	repo.On("FindByID", mock.Anything, uint64(3), uint64(7)).Return(done, nil).Once()
	repo.On("Update", mock.Anything, done).Return(done, nil).Once()

	second, err := svc.SetCompletion(context.Background(), 7, 3, true)
	require.NoError(t, err)
	require.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateTodo_NotFound(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	repo.On("FindByID", mock.Anything, uint64(99), uint64(7)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	title := "renamed"
	_, err := svc.UpdateTodo(context.Background(), 7, 99, domain.TaskPatch{Title: &title})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repo.AssertExpectations(t)
}

func TestTaskService_UpdateTodo_PartialLeavesOtherFields(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	due, _ := time.Parse(domain.DateLayout, "2025-09-07")
	existing := domain.Task{ID: 3, OwnerID: 7, Title: "original", DueDate: &due}

	title := "renamed"
	expected := existing
	expected.Title = title

	repo.On("FindByID", mock.Anything, uint64(3), uint64(7)).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, expected).Return(expected, nil).Once()

	updated, err := svc.UpdateTodo(context.Background(), 7, 3, domain.TaskPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, &due, updated.DueDate)
	repo.AssertExpectations(t)
}

func TestTaskService_DeleteTodo_AbsentIsNotAnError(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	repo.On("Delete", mock.Anything, uint64(42), uint64(7)).Return(int64(0), nil).Once()

	deleted, err := svc.DeleteTodo(context.Background(), 7, 42)
	require.NoError(t, err)
	require.Zero(t, deleted)
	repo.AssertExpectations(t)
}

func TestTaskService_CategorizedTodos_UsesExplicitToday(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewTaskService(repo, defaultPolicy())

	due, _ := time.Parse(domain.DateLayout, "2025-09-07")
	repo.On("ListByOwner", mock.Anything, uint64(7)).
		Return([]domain.Task{{ID: 1, Title: "Test Todo", DueDate: &due}}, nil).Once()

	today, _ := time.Parse(domain.DateLayout, "2025-09-10")
	buckets, err := svc.CategorizedTodos(context.Background(), 7, today)
	require.NoError(t, err)
	require.Len(t, buckets.Overdue, 1)
	require.Equal(t, "Test Todo", buckets.Overdue[0].Title)
	repo.AssertExpectations(t)
}
