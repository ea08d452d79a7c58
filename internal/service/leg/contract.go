//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=leg_test
package leg

import (
	"context"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Repository interface {
	GetLegByID(ctx context.Context, id uuid.UUID) (*entities.Leg, error)
	// GetLegByIDForUpdate row-locks the leg so concurrent lifecycle
	// transitions on it serialize.
	GetLegByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Leg, error)
	// GetLegsByRouteForUpdate row-locks every leg of the route, ordered
	// by leg order. Used for the previous-leg and completion checks.
	GetLegsByRouteForUpdate(ctx context.Context, routeID uuid.UUID) ([]entities.Leg, error)
	UpdateLeg(ctx context.Context, legModify entities.LegModify) (*entities.Leg, error)
	GetActiveLegsByTruck(ctx context.Context, truckID uuid.UUID) ([]entities.Leg, error)
	GetActiveLegs(ctx context.Context) ([]entities.Leg, error)
}

type ShipmentRepository interface {
	GetByRouteID(ctx context.Context, routeID uuid.UUID) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	UpdateContainer(ctx context.Context, containerModify entities.ContainerModify) (*entities.Container, error)
}

type DepotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Depot, error)
}

type FleetGateway interface {
	GetTruck(ctx context.Context, id uuid.UUID) (*entities.Truck, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
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
