package model

import (
	"errors"
	"sort"
	"strings"

	"todo-tracker/pkg/msg"
)

var (
	// ErrNotFound is returned for missing rows and for rows owned by someone else alike.
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username taken")
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ValidationError carries one message per invalid form field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records the catalogue message for field, keeping the first error per field.
func (e *ValidationError) Add(field, messageKey string, args ...interface{}) {
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = msg.GetMessage(messageKey, args...)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when it holds at least one field error.
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
