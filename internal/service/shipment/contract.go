//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, shipment entities.Shipment) (*entities.Shipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error)
	GetByNumber(ctx context.Context, number string) (*entities.Shipment, error)
	// ExistsContainerIdentification reports whether any container
	// already uses the identification.
	ExistsContainerIdentification(ctx context.Context, identification string) (bool, error)
	// NextDailySequence atomically increments and returns the per-day
	// shipment counter for the given date key (YYYYMMDD).
	NextDailySequence(ctx context.Context, dateKey string) (int64, error)
	ListPending(ctx context.Context) ([]entities.Shipment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entities.Shipment, error)
}

type RouteRepository interface {
	// GetCurrentLegByShipment returns the leg the shipment is executing
	// right now, or the next one to execute. Nil when the shipment has
	// no committed route or every leg is finished.
	GetCurrentLegByShipment(ctx context.Context, shipmentID uuid.UUID) (*entities.Leg, error)
}

type CustomerGateway interface {
	GetByEmail(ctx context.Context, email string) (*entities.Customer, error)
	Create(ctx context.Context, newCustomer entities.NewCustomer) (*entities.Customer, error)
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
