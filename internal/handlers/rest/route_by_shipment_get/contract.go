//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_by_shipment_get_test
package route_by_shipment_get

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
	GetByShipment(ctx context.Context, shipmentID uuid.UUID) (*entities.Route, error)
}
