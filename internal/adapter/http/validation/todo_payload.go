package validation

import (
	"bytes"
	"encoding/json"
	"time"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/core/domain"
)

// BuildTodoPatch turns an update payload into a domain patch. The raw
// message map distinguishes fields that were absent from fields sent as
// null: `"dueDate": null` clears the due date, an absent key leaves it
// alone. Every violation is collected before returning.
func BuildTodoPatch(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.TaskPatch, *domain.ValidationError) {
	verr := &domain.ValidationError{}

	if !hasJSONField(raw, "title") && !hasJSONField(raw, "dueDate") && !hasJSONField(raw, "completed") {
		verr.Add("body", "at least one of title, dueDate or completed must be supplied")
		return domain.TaskPatch{}, verr
	}

	var patch domain.TaskPatch

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			verr.Add("title", "title cannot be null")
		} else {
			patch.Title = req.Title
		}
	}

	if hasJSONField(raw, "dueDate") {
		patch.DueDateSet = true
		if !isJSONNull(raw["dueDate"]) {
			if req.DueDate == nil || *req.DueDate == "" {
				verr.Add("dueDate", "due date must be a valid YYYY-MM-DD date")
			} else {
				parsed, err := time.Parse(domain.DateLayout, *req.DueDate)
				if err != nil {
					verr.Add("dueDate", "due date must be a valid YYYY-MM-DD date")
				} else {
					patch.DueDate = &parsed
				}
			}
		}
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			verr.Add("completed", "completed must be a boolean")
		} else {
			patch.Completed = req.Completed
		}
	}

	if verr.HasErrors() {
		return domain.TaskPatch{}, verr
	}
	return patch, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
