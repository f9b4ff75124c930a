package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/infra/database/dbtest"
)

func TestHealth(t *testing.T) {
	database := dbtest.Open(t)
	gateway := NewGormHealthDBGateway(database)

	health := gateway.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "sqlite", health.Details["dialect"])

	sqlDB, err := database.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Equal(t, model.StatusDown, gateway.Health(context.Background()).Status)
}
