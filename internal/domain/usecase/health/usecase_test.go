package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-tracker/internal/domain/model"
)

type stubHealth model.ComponentHealthStatus

func (s stubHealth) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus(s)
}

func TestCheckHealth(t *testing.T) {
	up := stubHealth{Status: model.StatusUp}
	down := stubHealth{Status: model.StatusDown}
	unknown := stubHealth{Status: model.StatusUnknown}

	cases := []struct {
		name     string
		database stubHealth
		cache    stubHealth
		want     model.HealthStatus
	}{
		{"all up", up, up, model.StatusUp},
		{"cache disabled", up, unknown, model.StatusUp},
		{"cache down", up, down, model.StatusDown},
		{"database down", down, unknown, model.StatusDown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			response := NewHealthUseCase(c.database, c.cache).CheckHealth(context.Background())
			assert.Equal(t, c.want, response.Status)
			assert.Equal(t, c.cache.Status, response.Cache.Status)
		})
	}
}
