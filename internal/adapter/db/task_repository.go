package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

// Tasks without a due date sort after dated ones so the dashboard shows
// dated work first.
const listTodosQuery = `
SELECT id, user_id, title, due_date, completed, created_at, updated_at
FROM todos
WHERE user_id = ?
ORDER BY due_date IS NULL, due_date ASC, id ASC;
`

const findTodoQuery = `
SELECT id, user_id, title, due_date, completed, created_at, updated_at
FROM todos
WHERE id = ? AND user_id = ?;
`

const insertTodoQuery = `
INSERT INTO todos (user_id, title, due_date, completed)
VALUES (?, ?, ?, 0);
`

const updateTodoQuery = `
UPDATE todos
SET title = ?, due_date = ?, completed = ?
WHERE id = ? AND user_id = ?;
`

const deleteTodoQuery = `
DELETE FROM todos
WHERE id = ? AND user_id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID        uint64       `db:"id"`
	UserID    uint64       `db:"user_id"`
	Title     string       `db:"title"`
	DueDate   sql.NullTime `db:"due_date"`
	Completed bool         `db:"completed"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listTodosQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTodoRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, ownerID uint64) (domain.Task, error) {
	var row todoRow
	if err := r.db.GetContext(ctx, &row, findTodoQuery, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTodoRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, ownerID uint64, in domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTodoQuery, ownerID, in.Title, dueDateParam(in.DueDate))
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, uint64(id), ownerID)
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		updateTodoQuery,
		task.Title,
		dueDateParam(task.DueDate),
		task.Completed,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	// Zero rows affected can mean "identical values", so re-read instead
	// of treating it as not found.
	if _, err := result.RowsAffected(); err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, task.ID, task.OwnerID)
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteTodoQuery, id, ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func dueDateParam(dueDate *time.Time) interface{} {
	if dueDate == nil {
		return nil
	}
	return dueDate.Format(domain.DateLayout)
}

func mapTodoRowToDomainTask(row todoRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}
