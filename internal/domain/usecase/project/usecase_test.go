package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/infra/database/dbtest"
)

func TestListComputesCompletionPercent(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	user, err := db.NewGormUserGateway(database).Create(ctx, entity.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)

	useCase := NewProjectUseCase(db.NewGormProjectGateway(database))
	todos := db.NewGormTodoGateway(database)

	half, err := useCase.Create(ctx, user.ID, model.ProjectForm{Name: "Half"})
	require.NoError(t, err)
	third, err := useCase.Create(ctx, user.ID, model.ProjectForm{Name: "Third"})
	require.NoError(t, err)
	_, err = useCase.Create(ctx, user.ID, model.ProjectForm{Name: "Empty"})
	require.NoError(t, err)

	add := func(projectID uint, completed bool) {
		_, err := todos.Create(ctx, entity.Todo{
			OwnerID:   user.ID,
			ProjectID: &projectID,
			Name:      "t",
			Priority:  entity.DefaultPriority,
			Completed: completed,
		})
		require.NoError(t, err)
	}
	add(half.ID, true)
	add(half.ID, true)
	add(half.ID, false)
	add(half.ID, false)
	add(third.ID, true)
	add(third.ID, false)
	add(third.ID, false)

	projects, err := useCase.List(ctx, user.ID)
	require.NoError(t, err)

	percents := make(map[string]int)
	for _, project := range projects {
		percents[project.Name] = project.CompletionPercent
	}
	assert.Equal(t, map[string]int{"Empty": 0, "Half": 50, "Third": 33}, percents)
}

func TestCreateValidatesName(t *testing.T) {
	database := dbtest.Open(t)
	useCase := NewProjectUseCase(db.NewGormProjectGateway(database))

	for _, name := range []string{"", "   ", strings.Repeat("p", 256)} {
		_, err := useCase.Create(context.Background(), 1, model.ProjectForm{Name: name})

		var validation *model.ValidationError
		require.True(t, errors.As(err, &validation))
		assert.Contains(t, validation.Fields, "name")
	}
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	users := db.NewGormUserGateway(database)
	alice, err := users.Create(ctx, entity.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, entity.User{Username: "bob", PasswordHash: "x"})
	require.NoError(t, err)

	useCase := NewProjectUseCase(db.NewGormProjectGateway(database))
	project, err := useCase.Create(ctx, alice.ID, model.ProjectForm{Name: "Mine", Description: " notes "})
	require.NoError(t, err)
	assert.Equal(t, "notes", project.Description)

	_, err = useCase.Delete(ctx, bob.ID, project.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	deleted, err := useCase.Delete(ctx, alice.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", deleted.Name)

	_, err = useCase.FindByID(ctx, alice.ID, project.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
