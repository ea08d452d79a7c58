//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=depot_containers_get_test
package depot_containers_get

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
	ContainersInDepot(ctx context.Context, depotID uuid.UUID) ([]entities.StoredContainer, error)
}
