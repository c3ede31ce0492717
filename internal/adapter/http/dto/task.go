package dto

type TodoItem struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	DueDate   *string `json:"dueDate"`
	Completed bool    `json:"completed"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type CategorizedTodos struct {
	Overdue   []TodoItem `json:"overdue"`
	DueToday  []TodoItem `json:"dueToday"`
	DueLater  []TodoItem `json:"dueLater"`
	NoDueDate []TodoItem `json:"noDueDate"`
	Completed []TodoItem `json:"completed"`
}

type CreateTodoRequest struct {
	Title   string  `json:"title"`
	DueDate *string `json:"dueDate"`
}

type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	DueDate   *string `json:"dueDate"`
	Completed *bool   `json:"completed"`
}

type DeleteTodoResponse struct {
	Deleted bool `json:"deleted"`
}
