package health

import (
	"context"

	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/throttle"
	"todo-tracker/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway throttle.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway throttle.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

// CheckHealth reports DOWN when any component is DOWN. A disabled cache reports UNKNOWN and is ignored.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	cacheHealth := useCase.cacheGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}
