package mapper

import (
	"time"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/core/domain"
)

func ToTodoItems(tasks []domain.Task) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTodoItem(task))
	}
	return items
}

func ToTodoItem(task domain.Task) dto.TodoItem {
	item := dto.TodoItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(domain.DateLayout)
		item.DueDate = &value
	}

	return item
}

func ToCategorizedTodos(buckets domain.Buckets) dto.CategorizedTodos {
	return dto.CategorizedTodos{
		Overdue:   ToTodoItems(buckets.Overdue),
		DueToday:  ToTodoItems(buckets.DueToday),
		DueLater:  ToTodoItems(buckets.DueLater),
		NoDueDate: ToTodoItems(buckets.NoDueDate),
		Completed: ToTodoItems(buckets.Completed),
	}
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		FirstName: user.FirstName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
