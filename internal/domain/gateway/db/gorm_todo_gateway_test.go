package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/infra/database/dbtest"
)

func TestTodoGatewayOrdersByPriorityThenDueDate(t *testing.T) {
	database := dbtest.Open(t)
	owner := createUser(t, database, "alice")
	due := date(2030, time.January, 1)

	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "low", Priority: entity.PriorityLow, DueDate: due})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "high", Priority: entity.PriorityHigh, DueDate: due})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "medium", Priority: entity.PriorityMedium, DueDate: due})

	todos, err := NewGormTodoGateway(database).FindAll(context.Background(), owner.ID, model.TodoFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "medium", "low"}, names(todos))
}

func TestTodoGatewayPutsMissingDueDatesLast(t *testing.T) {
	database := dbtest.Open(t)
	owner := createUser(t, database, "alice")

	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "no date"})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "later", DueDate: date(2030, time.March, 1)})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "sooner", DueDate: date(2030, time.February, 1)})

	todos, err := NewGormTodoGateway(database).FindAll(context.Background(), owner.ID, model.TodoFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"sooner", "later", "no date"}, names(todos))
}

func TestTodoGatewayFilters(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	owner := createUser(t, database, "alice")
	other := createUser(t, database, "bob")
	project := createProject(t, database, owner.ID, "Home")

	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "Buy Milk", Completed: true, ProjectID: uintPtr(project.ID)})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "Write report", Priority: entity.PriorityHigh})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "100% done_ish"})
	createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "École trip"})
	createTodo(t, database, entity.Todo{OwnerID: other.ID, Name: "Buy milk for bob", Completed: true})

	gateway := NewGormTodoGateway(database)
	high := entity.PriorityHigh

	tests := []struct {
		name   string
		filter model.TodoFilter
		want   []string
	}{
		{"no filter returns only own rows", model.TodoFilter{}, []string{"Write report", "Buy Milk", "100% done_ish", "École trip"}},
		{"case insensitive substring", model.TodoFilter{Query: "milk"}, []string{"Buy Milk"}},
		{"case insensitive beyond ascii", model.TodoFilter{Query: "école"}, []string{"École trip"}},
		{"upper case query", model.TodoFilter{Query: "ÉCOLE TRIP"}, []string{"École trip"}},
		{"wildcards are literal", model.TodoFilter{Query: "0%"}, []string{"100% done_ish"}},
		{"underscore is literal", model.TodoFilter{Query: "e_i"}, []string{"100% done_ish"}},
		{"project", model.TodoFilter{ProjectID: uintPtr(project.ID)}, []string{"Buy Milk"}},
		{"priority", model.TodoFilter{Priority: &high}, []string{"Write report"}},
		{"completed", model.TodoFilter{Status: model.StatusCompleted}, []string{"Buy Milk"}},
		{"incomplete", model.TodoFilter{Status: model.StatusIncomplete}, []string{"Write report", "100% done_ish", "École trip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, err := gateway.FindAll(ctx, owner.ID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(todos))
		})
	}
}

func TestTodoGatewayFindByIDIsOwnerScoped(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	owner := createUser(t, database, "alice")
	other := createUser(t, database, "bob")
	todo := createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "mine", DueDate: date(2024, time.December, 31)})

	gateway := NewGormTodoGateway(database)

	found, err := gateway.FindByID(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", found.Name)
	assert.Equal(t, "2024-12-31", found.DueDateString())

	_, err = gateway.FindByID(ctx, other.ID, todo.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = gateway.FindByID(ctx, owner.ID, todo.ID+100)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestTodoGatewayUpdate(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	owner := createUser(t, database, "alice")
	other := createUser(t, database, "bob")
	project := createProject(t, database, owner.ID, "Home")
	todo := createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "draft", ProjectID: uintPtr(project.ID), DueDate: date(2030, time.May, 5)})

	gateway := NewGormTodoGateway(database)

	changed := *todo
	changed.Name = "final"
	changed.Priority = entity.PriorityHigh
	changed.ProjectID = nil
	changed.DueDate = nil
	changed.Completed = true

	updated, err := gateway.Update(ctx, owner.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Name)
	assert.Equal(t, entity.PriorityHigh, updated.Priority)
	assert.Nil(t, updated.ProjectID)
	assert.Nil(t, updated.DueDate)
	assert.True(t, updated.Completed)
	assert.False(t, updated.UpdatedAt.Before(todo.UpdatedAt))

	hijack := *updated
	hijack.Name = "stolen"
	_, err = gateway.Update(ctx, other.ID, hijack)
	assert.ErrorIs(t, err, model.ErrNotFound)

	unchanged, err := gateway.FindByID(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", unchanged.Name)
}

func TestTodoGatewayToggleCompleted(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	owner := createUser(t, database, "alice")
	other := createUser(t, database, "bob")
	todo := createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "flip"})

	gateway := NewGormTodoGateway(database)

	completed, err := gateway.ToggleCompleted(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = gateway.ToggleCompleted(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.False(t, completed)

	_, err = gateway.ToggleCompleted(ctx, other.ID, todo.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	reloaded, err := gateway.FindByID(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Completed)
}

func TestTodoGatewayDeleteByID(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	owner := createUser(t, database, "alice")
	other := createUser(t, database, "bob")
	todo := createTodo(t, database, entity.Todo{OwnerID: owner.ID, Name: "gone"})

	gateway := NewGormTodoGateway(database)

	assert.ErrorIs(t, gateway.DeleteByID(ctx, other.ID, todo.ID), model.ErrNotFound)
	require.NoError(t, gateway.DeleteByID(ctx, owner.ID, todo.ID))
	assert.ErrorIs(t, gateway.DeleteByID(ctx, owner.ID, todo.ID), model.ErrNotFound)
}
