package model

import (
	"strings"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/pkg/util/numberutils"
)

// TodoForm is the raw to-do form submission. Project ownership is checked by the todo use case.
type TodoForm struct {
	Name        string `form:"name" validate:"required,max=255"`
	Description string `form:"description"`
	DueDate     string `form:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Priority    string `form:"priority" validate:"omitempty,oneof=1 2 3"`
	Completed   string `form:"completed"`
	Project     string `form:"project"`
}

func (f TodoForm) Trimmed() TodoForm {
	return TodoForm{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		DueDate:     strings.TrimSpace(f.DueDate),
		Priority:    strings.TrimSpace(f.Priority),
		Completed:   f.Completed,
		Project:     strings.TrimSpace(f.Project),
	}
}

// IsCompleted interprets checkbox values.
func (f TodoForm) IsCompleted() bool {
	switch f.Completed {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// TodoStatus filters the list by completion.
type TodoStatus string

const (
	StatusCompleted  TodoStatus = "completed"
	StatusIncomplete TodoStatus = "incomplete"
)

// TodoFilter holds the optional list predicates. Nil or empty fields do not filter.
type TodoFilter struct {
	Query     string
	ProjectID *uint
	Priority  *entity.Priority
	Status    TodoStatus
}

// TodoFilterParams is the raw list query string.
type TodoFilterParams struct {
	Query    string `query:"q"`
	Project  string `query:"project"`
	Priority string `query:"priority"`
	Status   string `query:"status"`
}

// Filter converts the query string into list predicates, dropping values that do not parse.
func (p TodoFilterParams) Filter() TodoFilter {
	filter := TodoFilter{
		Query:     strings.TrimSpace(p.Query),
		ProjectID: numberutils.ToUintPtr(p.Project),
	}

	if value, ok := numberutils.ToUint(p.Priority); ok {
		if priority := entity.Priority(value); priority.Valid() {
			filter.Priority = &priority
		}
	}

	switch status := TodoStatus(p.Status); status {
	case StatusCompleted, StatusIncomplete:
		filter.Status = status
	}
	return filter
}

// ToggleResponse is returned to asynchronous toggle callers.
type ToggleResponse struct {
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}
