package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and comparison format for due dates. Due dates
// never carry a time-of-day component anywhere in the system.
const DateLayout = "2006-01-02"

type Task struct {
	ID        uint64
	OwnerID   uint64
	Title     string
	DueDate   *time.Time
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTaskInput struct {
	Title   string
	DueDate *time.Time
}

// TaskPatch is a partial update. DueDateSet distinguishes "clear the due
// date" from "leave it alone"; a nil DueDate with DueDateSet true clears.
type TaskPatch struct {
	Title      *string
	DueDate    *time.Time
	DueDateSet bool
	Completed  *bool
}

// TaskPolicy holds the validation knobs that differ between deployments.
type TaskPolicy struct {
	MinTitleLength int
	RequireDueDate bool
}

// ParseNewTask normalizes and validates raw form/JSON values into a
// CreateTaskInput. A blank due date is normalized to absent, not rejected.
// Every violated field is reported, not just the first.
func (p TaskPolicy) ParseNewTask(title, dueDate string) (CreateTaskInput, *ValidationError) {
	verr := &ValidationError{}

	title = strings.TrimSpace(title)
	p.checkTitle(verr, title)

	var due *time.Time
	dueDate = strings.TrimSpace(dueDate)
	if dueDate != "" {
		parsed, err := time.Parse(DateLayout, dueDate)
		if err != nil {
			verr.Add("dueDate", "due date must be a valid YYYY-MM-DD date")
		} else {
			due = &parsed
		}
	} else if p.RequireDueDate {
		verr.Add("dueDate", "due date is required")
	}

	if verr.HasErrors() {
		return CreateTaskInput{}, verr
	}
	return CreateTaskInput{Title: title, DueDate: due}, nil
}

// ValidatePatch re-validates only the fields the patch supplies.
func (p TaskPolicy) ValidatePatch(patch TaskPatch) *ValidationError {
	verr := &ValidationError{}

	if patch.Title != nil {
		p.checkTitle(verr, strings.TrimSpace(*patch.Title))
	}
	if patch.DueDateSet && patch.DueDate == nil && p.RequireDueDate {
		verr.Add("dueDate", "due date is required")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (p TaskPolicy) checkTitle(verr *ValidationError, title string) {
	if title == "" {
		verr.Add("title", "title cannot be empty")
		return
	}
	if min := p.MinTitleLength; min > 1 && len([]rune(title)) < min {
		verr.Add("title", "title is too short")
	}
}

// Apply merges the patch into the task and returns the result. Unsupplied
// fields are left untouched.
func (patch TaskPatch) Apply(task Task) Task {
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	return task
}
