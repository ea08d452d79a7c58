package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

// numberFormat is SHP-YYYYMMDD-NNNN where NNNN is the zero-padded
// per-day sequence.
const numberFormat = "SHP-%s-%04d"

type Shipment struct {
	repository Repository
	routeRepo  RouteRepository
	customers  CustomerGateway
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	routeRepo RouteRepository,
	customers CustomerGateway,
	txManager TxManager,
	log serviceLogger,
) *Shipment {
	return &Shipment{
		repository: repository,
		routeRepo:  routeRepo,
		customers:  customers,
		txManager:  txManager,
		log:        log.With(),
	}
}

// Create registers a draft shipment. The customer is resolved by email
// or created in the customer service first; the container uniqueness
// check, the daily sequence claim and the insert then run in one
// transaction so concurrent creates never collide on a number.
func (s *Shipment) Create(ctx context.Context, newShipment entities.NewShipment) (*entities.Shipment, error) {
	if err := validateNewShipment(newShipment); err != nil {
		return nil, err
	}

	customer, err := s.resolveCustomer(ctx, newShipment.Customer)
	if err != nil {
		return nil, err
	}

	var created *entities.Shipment

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repository.ExistsContainerIdentification(ctx, newShipment.Container.Identification)
		if err != nil {
			return fmt.Errorf("check container identification: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrContainerConflict, newShipment.Container.Identification)
		}

		now := time.Now().UTC()
		dateKey := now.Format("20060102")

		sequence, err := s.repository.NextDailySequence(ctx, dateKey)
		if err != nil {
			return fmt.Errorf("claim daily sequence: %w", err)
		}

		created, err = s.repository.Create(ctx, entities.Shipment{
			ID:         uuid.New(),
			Number:     fmt.Sprintf(numberFormat, dateKey, sequence),
			CustomerID: customer.ID,
			Container: entities.Container{
				ID:             uuid.New(),
				Identification: newShipment.Container.Identification,
				WeightKg:       newShipment.Container.WeightKg,
				VolumeM3:       newShipment.Container.VolumeM3,
				Status:         entities.ContainerAtOrigin,
				CurrentAddress: newShipment.Origin.Address,
				CustomerID:     customer.ID,
			},
			Origin:      newShipment.Origin,
			Destination: newShipment.Destination,
			Status:      entities.ShipmentDraft,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("shipment", created.Number),
		logger.NewField("customer_id", customer.ID),
	).Info("shipment created")

	return created, nil
}

func (s *Shipment) Get(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	shipmentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipmentEntity, nil
}

func (s *Shipment) GetByNumber(ctx context.Context, number string) (*entities.Shipment, error) {
	shipmentEntity, err := s.repository.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get shipment by number: %w", err)
	}
	return shipmentEntity, nil
}

// Tracking returns the shipment's progress summary, including the leg
// currently underway when a route has been committed.
func (s *Shipment) Tracking(ctx context.Context, id uuid.UUID) (*entities.ShipmentTracking, error) {
	shipmentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment for tracking: %w", err)
	}

	currentLeg, err := s.routeRepo.GetCurrentLegByShipment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get current leg: %w", err)
	}

	return &entities.ShipmentTracking{
		ShipmentID:         shipmentEntity.ID,
		Number:             shipmentEntity.Number,
		Status:             shipmentEntity.Status,
		Container:          shipmentEntity.Container,
		CurrentLeg:         currentLeg,
		EstimatedCost:      shipmentEntity.EstimatedCost,
		EstimatedTimeHours: shipmentEntity.EstimatedTimeHours,
		FinalCost:          shipmentEntity.FinalCost,
		FinalTimeHours:     shipmentEntity.FinalTimeHours,
		CreatedAt:          shipmentEntity.CreatedAt,
	}, nil
}

// ListPending returns shipments that are not yet delivered or
// cancelled.
func (s *Shipment) ListPending(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending shipments: %w", err)
	}
	return shipments, nil
}

func (s *Shipment) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entities.Shipment, error) {
	shipments, err := s.repository.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list shipments by customer: %w", err)
	}
	return shipments, nil
}

func (s *Shipment) resolveCustomer(ctx context.Context, newCustomer entities.NewCustomer) (*entities.Customer, error) {
	customer, err := s.customers.GetByEmail(ctx, newCustomer.Email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	customer, err = s.customers.Create(ctx, newCustomer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.With(
		logger.NewField("customer_id", customer.ID),
	).Info("customer registered")

	return customer, nil
}

func validateNewShipment(newShipment entities.NewShipment) error {
	for _, loc := range []entities.Location{newShipment.Origin, newShipment.Destination} {
		if !isValidAddress(loc.Address) {
			return fmt.Errorf("%w: empty address", ErrInvalidLocation)
		}
		if !isValidLatitude(loc.Latitude) || !isValidLongitude(loc.Longitude) {
			return fmt.Errorf("%w: coordinates out of range", ErrInvalidLocation)
		}
	}

	if !isValidIdentification(newShipment.Container.Identification) {
		return fmt.Errorf("%w: empty identification", ErrInvalidContainer)
	}
	if newShipment.Container.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidContainer)
	}
	if newShipment.Container.VolumeM3 <= 0 {
		return fmt.Errorf("%w: volume must be positive", ErrInvalidContainer)
	}

	if !isValidName(newShipment.Customer.Name) {
		return fmt.Errorf("%w: empty name", ErrInvalidCustomer)
	}
	if !isValidEmail(newShipment.Customer.Email) {
		return fmt.Errorf("%w: malformed email", ErrInvalidCustomer)
	}

	return nil
}
