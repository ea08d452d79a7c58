//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type ShipmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
}

type DepotRepository interface {
	// GetByIDs resolves depot ids preserving the requested order.
	// Missing ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Depot, error)
}

type Repository interface {
	Create(ctx context.Context, route entities.Route) (*entities.Route, error)
	GetByShipmentID(ctx context.Context, shipmentID uuid.UUID) (*entities.Route, error)
}

type DistanceGateway interface {
	Route(ctx context.Context, originCoord, destCoord string) (*entities.RouteEstimate, error)
}

type TariffGateway interface {
	GetConfiguration(ctx context.Context) (*entities.TariffConfig, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
