//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=leg_start_post_test
package leg_start_post

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
	Start(ctx context.Context, legID uuid.UUID) (*entities.Leg, error)
}
