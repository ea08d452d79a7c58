//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=legs_by_truck_get_test
package legs_by_truck_get

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
	ByTruck(ctx context.Context, truckID uuid.UUID) ([]entities.Leg, error)
}
