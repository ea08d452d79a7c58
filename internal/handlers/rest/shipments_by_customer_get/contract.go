//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_by_customer_get_test
package shipments_by_customer_get

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
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entities.Shipment, error)
}
