//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_tracking_get_test
package shipment_tracking_get

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
	Tracking(ctx context.Context, id uuid.UUID) (*entities.ShipmentTracking, error)
}
