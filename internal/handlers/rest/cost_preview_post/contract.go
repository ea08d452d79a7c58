//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cost_preview_post_test
package cost_preview_post

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

type Gateway interface {
	ComputeCost(ctx context.Context, query entities.CostQuery) (*entities.CostBreakdown, error)
}
