//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=depot_post_test
package depot_post

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
	Create(ctx context.Context, depotModify entities.DepotModify) (*entities.Depot, error)
}
