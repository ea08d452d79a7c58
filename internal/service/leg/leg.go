package leg

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Leg struct {
	repository   Repository
	shipmentRepo ShipmentRepository
	depotRepo    DepotRepository
	fleet        FleetGateway
	tariff       TariffGateway
	txManager    TxManager
	log          serviceLogger
}

func New(
	repository Repository,
	shipmentRepo ShipmentRepository,
	depotRepo DepotRepository,
	fleet FleetGateway,
	tariff TariffGateway,
	txManager TxManager,
	log serviceLogger,
) *Leg {
	return &Leg{
		repository:   repository,
		shipmentRepo: shipmentRepo,
		depotRepo:    depotRepo,
		fleet:        fleet,
		tariff:       tariff,
		txManager:    txManager,
		log:          log.With(),
	}
}

// AssignTruck moves an estimated leg to assigned after checking the
// truck can carry the shipment's container. The leg update and the
// fleet availability toggle share one transaction boundary: if the
// toggle fails, the assignment rolls back.
func (s *Leg) AssignTruck(ctx context.Context, legID, truckID uuid.UUID) (*entities.Leg, error) {
	var assigned *entities.Leg

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		legEntity, err := s.repository.GetLegByIDForUpdate(ctx, legID)
		if err != nil {
			return fmt.Errorf("find leg for assignment: %w", err)
		}

		if legEntity.Status != entities.LegEstimated {
			return fmt.Errorf("%w: leg %d is %s, expected %s",
				ErrLegAlreadyAssigned, legEntity.Order, legEntity.Status, entities.LegEstimated)
		}

		shipmentEntity, err := s.shipmentRepo.GetByRouteID(ctx, legEntity.RouteID)
		if err != nil {
			return fmt.Errorf("find shipment for leg: %w", err)
		}

		truck, err := s.fleet.GetTruck(ctx, truckID)
		if err != nil {
			return fmt.Errorf("fetch truck: %w", err)
		}

		container := shipmentEntity.Container
		if container.WeightKg > truck.MaxWeightKg {
			return fmt.Errorf("%w: container %.2fkg, truck limit %.2fkg",
				ErrTruckWeightExceeded, container.WeightKg, truck.MaxWeightKg)
		}
		if container.VolumeM3 > truck.MaxVolumeM3 {
			return fmt.Errorf("%w: container %.2fm3, truck limit %.2fm3",
				ErrTruckVolumeExceeded, container.VolumeM3, truck.MaxVolumeM3)
		}

		assignedStatus := entities.LegAssigned
		assigned, err = s.repository.UpdateLeg(ctx, entities.LegModify{
			ID:      &legID,
			Status:  &assignedStatus,
			TruckID: &truckID,
		})
		if err != nil {
			return fmt.Errorf("assign truck to leg: %w", err)
		}

		err = s.fleet.SetAvailability(ctx, truckID, false)
		if err != nil {
			return fmt.Errorf("mark truck unavailable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("leg_id", legID),
		logger.NewField("truck_id", truckID),
	).Info("truck assigned to leg")

	return assigned, nil
}

// Start moves an assigned leg to started. Legs of one route execute
// strictly sequentially: a leg with order > 1 starts only after the
// previous leg finished.
func (s *Leg) Start(ctx context.Context, legID uuid.UUID) (*entities.Leg, error) {
	var started *entities.Leg

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		legEntity, err := s.repository.GetLegByIDForUpdate(ctx, legID)
		if err != nil {
			return fmt.Errorf("find leg to start: %w", err)
		}

		if legEntity.Status != entities.LegAssigned {
			return fmt.Errorf("%w: leg %d is %s", ErrLegNotAssigned, legEntity.Order, legEntity.Status)
		}
		if legEntity.TruckID == nil {
			return ErrLegWithoutTruck
		}

		if legEntity.Order > 1 {
			routeLegs, err := s.repository.GetLegsByRouteForUpdate(ctx, legEntity.RouteID)
			if err != nil {
				return fmt.Errorf("load route legs: %w", err)
			}

			previous := findByOrder(routeLegs, legEntity.Order-1)
			if previous == nil {
				return fmt.Errorf("%w: order %d", ErrPreviousLegNotFound, legEntity.Order-1)
			}
			if previous.Status != entities.LegFinished {
				return fmt.Errorf("%w: leg %d is %s", ErrPreviousLegNotFinished, previous.Order, previous.Status)
			}
		}

		now := time.Now().UTC()
		startedStatus := entities.LegStarted
		started, err = s.repository.UpdateLeg(ctx, entities.LegModify{
			ID:          &legID,
			Status:      &startedStatus,
			ActualStart: &now,
		})
		if err != nil {
			return fmt.Errorf("start leg: %w", err)
		}

		shipmentEntity, err := s.shipmentRepo.GetByRouteID(ctx, legEntity.RouteID)
		if err != nil {
			return fmt.Errorf("find shipment for leg: %w", err)
		}

		containerID := shipmentEntity.Container.ID
		if started.Order == 1 {
			pickedUp := entities.ContainerPickedUp
			_, err = s.shipmentRepo.UpdateContainer(ctx, entities.ContainerModify{
				ID:     &containerID,
				Status: &pickedUp,
			})
			if err != nil {
				return fmt.Errorf("mark container picked up: %w", err)
			}
		}

		inTransit := entities.ContainerInTransit
		originAddress := started.Origin.Address
		_, err = s.shipmentRepo.UpdateContainer(ctx, entities.ContainerModify{
			ID:             &containerID,
			Status:         &inTransit,
			CurrentAddress: &originAddress,
		})
		if err != nil {
			return fmt.Errorf("mark container in transit: %w", err)
		}

		if shipmentEntity.Status == entities.ShipmentScheduled {
			shipmentInTransit := entities.ShipmentInTransit
			_, err = s.shipmentRepo.Update(ctx, entities.ShipmentModify{
				ID:     &shipmentEntity.ID,
				Status: &shipmentInTransit,
			})
			if err != nil {
				return fmt.Errorf("mark shipment in transit: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("leg_id", legID),
		logger.NewField("order", started.Order),
	).Info("leg started")

	return started, nil
}

// Finish moves a started leg to finished, settles its actual cost,
// updates the container, releases the truck and rolls the shipment up
// to delivered when every leg of the route has finished.
func (s *Leg) Finish(ctx context.Context, legID uuid.UUID) (*entities.Leg, error) {
	var finished *entities.Leg

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		legEntity, err := s.repository.GetLegByIDForUpdate(ctx, legID)
		if err != nil {
			return fmt.Errorf("find leg to finish: %w", err)
		}

		if legEntity.Status != entities.LegStarted {
			return fmt.Errorf("%w: leg %d is %s", ErrLegNotStarted, legEntity.Order, legEntity.Status)
		}

		now := time.Now().UTC()

		actualCost, err := s.settleActualCost(ctx, legEntity, now)
		if err != nil {
			return err
		}

		finishedStatus := entities.LegFinished
		finished, err = s.repository.UpdateLeg(ctx, entities.LegModify{
			ID:         &legID,
			Status:     &finishedStatus,
			ActualEnd:  &now,
			ActualCost: &actualCost,
		})
		if err != nil {
			return fmt.Errorf("finish leg: %w", err)
		}

		shipmentEntity, err := s.shipmentRepo.GetByRouteID(ctx, legEntity.RouteID)
		if err != nil {
			return fmt.Errorf("find shipment for leg: %w", err)
		}

		err = s.settleContainer(ctx, finished, shipmentEntity)
		if err != nil {
			return err
		}

		if finished.TruckID != nil {
			err = s.fleet.SetAvailability(ctx, *finished.TruckID, true)
			if err != nil {
				return fmt.Errorf("release truck: %w", err)
			}
		}

		return s.rollUpShipment(ctx, finished.RouteID, shipmentEntity, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("leg_id", legID),
		logger.NewField("order", finished.Order),
		logger.NewField("actual_cost", finished.ActualCost),
	).Info("leg finished")

	return finished, nil
}

// ByTruck returns the legs a truck is currently working: assigned or
// started.
func (s *Leg) ByTruck(ctx context.Context, truckID uuid.UUID) ([]entities.Leg, error) {
	legs, err := s.repository.GetActiveLegsByTruck(ctx, truckID)
	if err != nil {
		return nil, fmt.Errorf("legs by truck: %w", err)
	}
	return legs, nil
}

// ReconcileTruckAvailability counts legs whose assigned truck reports
// itself available in the fleet service. Such a pair means a crash
// landed between the leg commit and the availability toggle; it is
// reported, not repaired.
func (s *Leg) ReconcileTruckAvailability(ctx context.Context) (int64, error) {
	legs, err := s.repository.GetActiveLegs(ctx)
	if err != nil {
		return 0, fmt.Errorf("load active legs: %w", err)
	}

	var mismatches int64
	for i := range legs {
		if legs[i].TruckID == nil {
			continue
		}

		truck, err := s.fleet.GetTruck(ctx, *legs[i].TruckID)
		if err != nil {
			s.log.With(
				logger.NewField("truck_id", *legs[i].TruckID),
				logger.NewField("error", err),
			).Warn("reconcile: fleet lookup failed")
			continue
		}

		if truck.Available {
			mismatches++
			s.log.With(
				logger.NewField("leg_id", legs[i].ID),
				logger.NewField("truck_id", truck.ID),
				logger.NewField("leg_status", legs[i].Status.String()),
			).Warn("reconcile: truck marked available while leg holds it")
		}
	}

	return mismatches, nil
}

// settleActualCost prices a finished leg with the assigned truck's real
// rates. A leg without a truck or timestamps keeps its estimate.
func (s *Leg) settleActualCost(ctx context.Context, legEntity *entities.Leg, actualEnd time.Time) (float64, error) {
	if legEntity.TruckID == nil || legEntity.ActualStart == nil {
		return legEntity.EstimatedCost, nil
	}

	truck, err := s.fleet.GetTruck(ctx, *legEntity.TruckID)
	if err != nil {
		return 0, fmt.Errorf("fetch truck for settlement: %w", err)
	}

	config, err := s.tariff.GetConfiguration(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch tariff configuration: %w", err)
	}

	haul := truck.CostPerKm * legEntity.DistanceKm
	fuel := truck.FuelConsumptionPerKm * legEntity.DistanceKm * config.FuelPricePerLiter

	var storage float64
	if legEntity.DepotID != nil {
		depot, err := s.depotRepo.GetByID(ctx, *legEntity.DepotID)
		if err != nil {
			return 0, fmt.Errorf("fetch depot for settlement: %w", err)
		}

		days := float64(int(actualEnd.Sub(*legEntity.ActualStart).Hours() / 24))
		storage = depot.DailyStorageCost * days
	}

	return round2(haul + fuel + storage), nil
}

func (s *Leg) settleContainer(ctx context.Context, finished *entities.Leg, shipmentEntity *entities.Shipment) error {
	containerID := shipmentEntity.Container.ID

	if finished.DepotID != nil {
		depot, err := s.depotRepo.GetByID(ctx, *finished.DepotID)
		if err != nil {
			return fmt.Errorf("fetch depot for container update: %w", err)
		}

		inDepot := entities.ContainerInDepot
		_, err = s.shipmentRepo.UpdateContainer(ctx, entities.ContainerModify{
			ID:             &containerID,
			Status:         &inDepot,
			CurrentAddress: &depot.Address,
		})
		if err != nil {
			return fmt.Errorf("mark container in depot: %w", err)
		}
		return nil
	}

	// No depot means the terminal leg: the container is delivered.
	delivered := entities.ContainerDelivered
	destAddress := finished.Destination.Address
	_, err := s.shipmentRepo.UpdateContainer(ctx, entities.ContainerModify{
		ID:             &containerID,
		Status:         &delivered,
		CurrentAddress: &destAddress,
	})
	if err != nil {
		return fmt.Errorf("mark container delivered: %w", err)
	}
	return nil
}

// rollUpShipment closes the shipment when the whole route is finished.
// Runs under the same row locks as the leg update, so exactly one
// finisher observes completion.
func (s *Leg) rollUpShipment(ctx context.Context, routeID uuid.UUID, shipmentEntity *entities.Shipment, now time.Time) error {
	routeLegs, err := s.repository.GetLegsByRouteForUpdate(ctx, routeID)
	if err != nil {
		return fmt.Errorf("load route legs for completion check: %w", err)
	}

	var finalCost float64
	for i := range routeLegs {
		if routeLegs[i].Status != entities.LegFinished {
			return nil
		}
		if routeLegs[i].ActualCost != nil {
			finalCost += *routeLegs[i].ActualCost
		}
	}

	delivered := entities.ShipmentDelivered
	modify := entities.ShipmentModify{
		ID:          &shipmentEntity.ID,
		Status:      &delivered,
		FinalCost:   &finalCost,
		DeliveredAt: &now,
	}

	first := routeLegs[0]
	last := routeLegs[len(routeLegs)-1]
	if first.ActualStart != nil && last.ActualEnd != nil {
		hours := float64(int(last.ActualEnd.Sub(*first.ActualStart).Hours()))
		modify.FinalTimeHours = &hours
	}

	_, err = s.shipmentRepo.Update(ctx, modify)
	if err != nil {
		return fmt.Errorf("deliver shipment: %w", err)
	}

	s.log.With(
		logger.NewField("shipment", shipmentEntity.Number),
		logger.NewField("final_cost", finalCost),
	).Info("shipment delivered")

	return nil
}

func findByOrder(legs []entities.Leg, order int) *entities.Leg {
	for i := range legs {
		if legs[i].Order == order {
			return &legs[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
