package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-tracker/internal/domain/entity"
)

func TestTodoFilterParams(t *testing.T) {
	filter := TodoFilterParams{Query: "  milk ", Project: "4", Priority: "1", Status: "completed"}.Filter()

	assert.Equal(t, "milk", filter.Query)
	if assert.NotNil(t, filter.ProjectID) {
		assert.Equal(t, uint(4), *filter.ProjectID)
	}
	if assert.NotNil(t, filter.Priority) {
		assert.Equal(t, entity.PriorityHigh, *filter.Priority)
	}
	assert.Equal(t, StatusCompleted, filter.Status)
}

func TestTodoFilterParamsIgnoresUnknownValues(t *testing.T) {
	filter := TodoFilterParams{Project: "abc", Priority: "9", Status: "archived"}.Filter()

	assert.Equal(t, TodoFilter{}, filter)
}

func TestTodoFormIsCompleted(t *testing.T) {
	assert.True(t, TodoForm{Completed: "on"}.IsCompleted())
	assert.True(t, TodoForm{Completed: "true"}.IsCompleted())
	assert.False(t, TodoForm{}.IsCompleted())
	assert.False(t, TodoForm{Completed: "off"}.IsCompleted())
}
