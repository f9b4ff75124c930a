package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-tracker/internal/domain/entity"
)

func createUser(t *testing.T, database *gorm.DB, username string) *entity.User {
	t.Helper()
	user, err := NewGormUserGateway(database).Create(context.Background(), entity.User{
		Username:     username,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func createProject(t *testing.T, database *gorm.DB, ownerID uint, name string) *entity.Project {
	t.Helper()
	project, err := NewGormProjectGateway(database).Create(context.Background(), entity.Project{
		OwnerID: ownerID,
		Name:    name,
	})
	require.NoError(t, err)
	return project
}

func createTodo(t *testing.T, database *gorm.DB, todo entity.Todo) *entity.Todo {
	t.Helper()
	if todo.Priority == 0 {
		todo.Priority = entity.DefaultPriority
	}
	created, err := NewGormTodoGateway(database).Create(context.Background(), todo)
	require.NoError(t, err)
	return created
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func uintPtr(v uint) *uint {
	return &v
}

func names(todos []entity.Todo) []string {
	result := make([]string, 0, len(todos))
	for _, todo := range todos {
		result = append(result, todo.Name)
	}
	return result
}
