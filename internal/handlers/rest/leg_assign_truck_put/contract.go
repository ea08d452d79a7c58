//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=leg_assign_truck_put_test
package leg_assign_truck_put

import (
	"context"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignTruck(ctx context.Context, legID, truckID uuid.UUID) (*entities.Leg, error)
}
