//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=depot_test
package depot

import (
	"context"

	"github.com/google/uuid"
	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, depotModify entities.DepotModify) (*entities.Depot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Depot, error)
	GetAll(ctx context.Context, onlyActive bool) ([]entities.Depot, error)
	Update(ctx context.Context, depotModify entities.DepotModify) (*entities.Depot, error)
}

type RouteRepository interface {
	// FindStoredContainers returns containers currently sitting in the
	// depot together with the planned leg that will move each one on.
	FindStoredContainers(ctx context.Context, depotID uuid.UUID) ([]entities.StoredContainer, error)
}
