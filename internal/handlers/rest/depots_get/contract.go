//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=depots_get_test
package depots_get

import (
	"context"

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
	List(ctx context.Context, onlyActive bool) ([]entities.Depot, error)
}
