package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/infra/database/dbtest"
)

func TestUserGatewayFindByUsername(t *testing.T) {
	database := dbtest.Open(t)
	created := createUser(t, database, "alice")
	gateway := NewGormUserGateway(database)

	found, err := gateway.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	byID, err := gateway.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = gateway.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
