package ports

import (
	"context"
	"time"

	"todoapp/internal/core/domain"
)

type TaskRepository interface {
	// ListByOwner returns the owner's tasks ordered by due date ascending,
	// tasks without a due date last.
	ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	FindByID(ctx context.Context, id, ownerID uint64) (domain.Task, error)
	Create(ctx context.Context, ownerID uint64, in domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	// Delete reports how many rows were removed; deleting an absent or
	// not-owned id yields 0, never an error.
	Delete(ctx context.Context, id, ownerID uint64) (int64, error)
}

type TaskService interface {
	ListTodos(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	CategorizedTodos(ctx context.Context, ownerID uint64, today time.Time) (domain.Buckets, error)
	CreateTodo(ctx context.Context, ownerID uint64, title, dueDate string) (domain.Task, error)
	UpdateTodo(ctx context.Context, ownerID, id uint64, patch domain.TaskPatch) (domain.Task, error)
	SetCompletion(ctx context.Context, ownerID, id uint64, completed bool) (domain.Task, error)
	DeleteTodo(ctx context.Context, ownerID, id uint64) (int64, error)
}
