package depot

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"logistics/internal/entities"
)

type Depot struct {
	repository Repository
	routeRepo  RouteRepository
}

func New(repository Repository, routeRepo RouteRepository) *Depot {
	return &Depot{
		repository: repository,
		routeRepo:  routeRepo,
	}
}

func (s *Depot) Create(ctx context.Context, depotModify entities.DepotModify) (*entities.Depot, error) {
	if depotModify.Name == nil ||
		depotModify.Address == nil ||
		depotModify.Latitude == nil ||
		depotModify.Longitude == nil ||
		depotModify.DailyStorageCost == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validateFields(depotModify); err != nil {
		return nil, err
	}

	depot, err := s.repository.Create(ctx, depotModify)
	if err != nil {
		return nil, fmt.Errorf("create depot: %w", err)
	}

	return depot, nil
}

func (s *Depot) Get(ctx context.Context, id uuid.UUID) (*entities.Depot, error) {
	depot, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get depot: %w", err)
	}

	return depot, nil
}

func (s *Depot) List(ctx context.Context, onlyActive bool) ([]entities.Depot, error) {
	depots, err := s.repository.GetAll(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list depots: %w", err)
	}

	return depots, nil
}

func (s *Depot) Update(ctx context.Context, depotModify entities.DepotModify) (*entities.Depot, error) {
	if depotModify.Name == nil &&
		depotModify.Address == nil &&
		depotModify.Latitude == nil &&
		depotModify.Longitude == nil &&
		depotModify.DailyStorageCost == nil &&
		depotModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateFields(depotModify); err != nil {
		return nil, err
	}

	depot, err := s.repository.Update(ctx, depotModify)
	if err != nil {
		return nil, fmt.Errorf("update depot: %w", err)
	}

	return depot, nil
}

// ContainersInDepot lists containers currently held at the depot and
// the planned onward leg for each.
func (s *Depot) ContainersInDepot(ctx context.Context, depotID uuid.UUID) ([]entities.StoredContainer, error) {
	_, err := s.repository.GetByID(ctx, depotID)
	if err != nil {
		return nil, fmt.Errorf("get depot: %w", err)
	}

	stored, err := s.routeRepo.FindStoredContainers(ctx, depotID)
	if err != nil {
		return nil, fmt.Errorf("find stored containers: %w", err)
	}

	return stored, nil
}

func validateFields(depotModify entities.DepotModify) error {
	if depotModify.Name != nil && !isValidName(*depotModify.Name) {
		return ErrInvalidName
	}
	if depotModify.Address != nil && !isValidAddress(*depotModify.Address) {
		return ErrInvalidAddress
	}
	if depotModify.Latitude != nil && depotModify.Longitude != nil &&
		!isValidCoordinates(*depotModify.Latitude, *depotModify.Longitude) {
		return ErrInvalidCoordinates
	}
	if depotModify.DailyStorageCost != nil && *depotModify.DailyStorageCost < 0 {
		return ErrInvalidStorageCost
	}

	return nil
}
