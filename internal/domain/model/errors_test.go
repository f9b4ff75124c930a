package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorKeepsFirstMessagePerField(t *testing.T) {
	validation := NewValidationError()
	assert.NoError(t, validation.OrNil())

	validation.Add("name", "todo.error.name.required")
	validation.Add("name", "todo.error.name.max")
	validation.Add("due_date", "todo.error.due_date.datetime")

	err := validation.OrNil()
	var target *ValidationError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "This field is required.", target.Fields["name"])
	assert.Equal(t, "Enter a valid date in YYYY-MM-DD format.", target.Fields["due_date"])
	assert.Equal(t,
		"validation failed: due_date: Enter a valid date in YYYY-MM-DD format.; name: This field is required.",
		err.Error())
}
