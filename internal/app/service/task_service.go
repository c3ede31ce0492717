package service

import (
	"context"
	"time"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	policy         domain.TaskPolicy
}

func NewTaskService(taskRepository ports.TaskRepository, policy domain.TaskPolicy) *TaskService {
	return &TaskService{taskRepository: taskRepository, policy: policy}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTodos(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID)
}

func (s *TaskService) CategorizedTodos(ctx context.Context, ownerID uint64, today time.Time) (domain.Buckets, error) {
	tasks, err := s.taskRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.Buckets{}, err
	}
	return domain.Categorize(tasks, today), nil
}

func (s *TaskService) CreateTodo(ctx context.Context, ownerID uint64, title, dueDate string) (domain.Task, error) {
	input, verr := s.policy.ParseNewTask(title, dueDate)
	if verr != nil {
		return domain.Task{}, verr
	}
	return s.taskRepository.Create(ctx, ownerID, input)
}

func (s *TaskService) UpdateTodo(ctx context.Context, ownerID, id uint64, patch domain.TaskPatch) (domain.Task, error) {
	if verr := s.policy.ValidatePatch(patch); verr != nil {
		return domain.Task{}, verr
	}

	task, err := s.taskRepository.FindByID(ctx, id, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Update(ctx, patch.Apply(task))
}

// SetCompletion overwrites the completion flag with the given boolean.
// Repeating the same value is a no-op the second time around.
func (s *TaskService) SetCompletion(ctx context.Context, ownerID, id uint64, completed bool) (domain.Task, error) {
	return s.UpdateTodo(ctx, ownerID, id, domain.TaskPatch{Completed: &completed})
}

func (s *TaskService) DeleteTodo(ctx context.Context, ownerID, id uint64) (int64, error) {
	return s.taskRepository.Delete(ctx, id, ownerID)
}
