package route

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

// Values used when the distance provider is unreachable. Planning stays
// available in degraded mode instead of failing the whole request.
const (
	fallbackDistanceKm    = 100.00
	fallbackDurationHours = 1.67
)

type Route struct {
	repository   Repository
	shipmentRepo ShipmentRepository
	depotRepo    DepotRepository
	distance     DistanceGateway
	tariff       TariffGateway
	txManager    TxManager
	log          serviceLogger
}

func New(
	repository Repository,
	shipmentRepo ShipmentRepository,
	depotRepo DepotRepository,
	distance DistanceGateway,
	tariff TariffGateway,
	txManager TxManager,
	log serviceLogger,
) *Route {
	return &Route{
		repository:   repository,
		shipmentRepo: shipmentRepo,
		depotRepo:    depotRepo,
		distance:     distance,
		tariff:       tariff,
		txManager:    txManager,
		log:          log.With(),
	}
}

// PlanTentative decomposes a shipment into consecutive legs through the
// given depots and prices each leg with the current tariff
// configuration. Pure read and compute, no persistence side effects.
func (s *Route) PlanTentative(ctx context.Context, shipmentID uuid.UUID, depotIDs []uuid.UUID) (*entities.TentativeRoute, error) {
	shipmentEntity, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("find shipment for planning: %w", err)
	}

	depots, err := s.depotRepo.GetByIDs(ctx, depotIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve depots: %w", err)
	}
	if len(depots) != len(depotIDs) {
		return nil, fmt.Errorf("%w: requested %d, resolved %d", ErrDepotsNotFound, len(depotIDs), len(depots))
	}

	// One configuration read per planning call, reused for every leg.
	config, err := s.tariff.GetConfiguration(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tariff configuration: %w", err)
	}

	legs := make([]entities.TentativeLeg, 0, len(depots)+1)
	var totalCost, totalTime, totalDistance float64

	currentCoord := formatCoordinates(shipmentEntity.Origin.Latitude, shipmentEntity.Origin.Longitude)
	currentAddress := shipmentEntity.Origin.Address
	order := 1

	for i := range depots {
		depot := depots[i]
		legType := entities.LegOriginDepot
		if i > 0 {
			legType = entities.LegDepotDepot
		}

		depotCoord := formatCoordinates(depot.Latitude, depot.Longitude)
		leg := s.buildTentativeLeg(ctx, order, legType, currentAddress, depot.Address, currentCoord, depotCoord, config, &depot)

		legs = append(legs, leg)
		totalCost += leg.EstimatedCost
		totalTime += leg.TimeHours
		totalDistance += leg.DistanceKm

		currentCoord = depotCoord
		currentAddress = depot.Address
		order++
	}

	lastType := entities.LegOriginDestination
	if len(depots) > 0 {
		lastType = entities.LegDepotDestination
	}

	destCoord := formatCoordinates(shipmentEntity.Destination.Latitude, shipmentEntity.Destination.Longitude)
	lastLeg := s.buildTentativeLeg(ctx, order, lastType, currentAddress, shipmentEntity.Destination.Address, currentCoord, destCoord, config, nil)

	legs = append(legs, lastLeg)
	totalCost += lastLeg.EstimatedCost
	totalTime += lastLeg.TimeHours
	totalDistance += lastLeg.DistanceKm

	// Management fee is charged once per leg on the route total, never
	// inside the per-leg estimate.
	totalCost += config.ManagementFeePerLeg * float64(len(legs))

	return &entities.TentativeRoute{
		ShipmentID:      shipmentID,
		Legs:            legs,
		TotalCost:       round2(totalCost),
		TotalTimeHours:  round2(totalTime),
		TotalDistanceKm: round2(totalDistance),
	}, nil
}

// Commit turns a tentative plan into the shipment's single persisted
// route. Route, legs and the shipment status change commit as one
// transaction.
func (s *Route) Commit(ctx context.Context, shipmentID uuid.UUID, depotIDs []uuid.UUID) (*entities.Route, error) {
	var committed *entities.Route

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.shipmentRepo.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("find shipment for commit: %w", err)
		}

		if shipmentEntity.Status != entities.ShipmentDraft {
			return fmt.Errorf("%w: shipment %s is %s, expected %s",
				ErrRouteAlreadyAssigned, shipmentEntity.Number, shipmentEntity.Status, entities.ShipmentDraft)
		}

		tentative, err := s.PlanTentative(ctx, shipmentID, depotIDs)
		if err != nil {
			return fmt.Errorf("plan tentative route: %w", err)
		}

		depots, err := s.depotRepo.GetByIDs(ctx, depotIDs)
		if err != nil {
			return fmt.Errorf("resolve depots: %w", err)
		}
		depotsByID := make(map[uuid.UUID]entities.Depot, len(depots))
		for _, d := range depots {
			depotsByID[d.ID] = d
		}

		routeEntity := entities.Route{
			ID:         uuid.New(),
			ShipmentID: shipmentID,
			LegCount:   len(tentative.Legs),
			DepotCount: len(depotIDs),
			CreatedAt:  time.Now().UTC(),
		}

		// The first leg's estimated start is the commit time; every
		// later leg starts when the previous one is estimated to end.
		nextStart := time.Now().UTC()
		previous := shipmentEntity.Origin

		for _, tl := range tentative.Legs {
			destination, err := s.resolveDestination(tl, shipmentEntity, depotsByID)
			if err != nil {
				return err
			}

			minutes := int64(tl.TimeHours * 60)
			estimatedEnd := nextStart.Add(time.Duration(minutes) * time.Minute)

			routeEntity.Legs = append(routeEntity.Legs, entities.Leg{
				ID:             uuid.New(),
				RouteID:        routeEntity.ID,
				Order:          tl.Order,
				Type:           tl.Type,
				Status:         entities.LegEstimated,
				Origin:         previous,
				Destination:    destination,
				DistanceKm:     tl.DistanceKm,
				EstimatedCost:  tl.EstimatedCost,
				EstimatedStart: nextStart,
				EstimatedEnd:   estimatedEnd,
				DepotID:        tl.DepotID,
			})

			nextStart = estimatedEnd
			previous = destination
		}

		committed, err = s.repository.Create(ctx, routeEntity)
		if err != nil {
			return fmt.Errorf("persist route: %w", err)
		}

		scheduled := entities.ShipmentScheduled
		_, err = s.shipmentRepo.Update(ctx, entities.ShipmentModify{
			ID:                 &shipmentID,
			Status:             &scheduled,
			EstimatedCost:      &tentative.TotalCost,
			EstimatedTimeHours: &tentative.TotalTimeHours,
		})
		if err != nil {
			return fmt.Errorf("schedule shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("route_id", committed.ID),
		logger.NewField("shipment_id", shipmentID),
		logger.NewField("legs", committed.LegCount),
	).Info("route committed")

	return committed, nil
}

func (s *Route) GetByShipment(ctx context.Context, shipmentID uuid.UUID) (*entities.Route, error) {
	routeEntity, err := s.repository.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get route by shipment: %w", err)
	}
	return routeEntity, nil
}

func (s *Route) buildTentativeLeg(
	ctx context.Context,
	order int,
	legType entities.LegType,
	originAddress, destAddress string,
	originCoord, destCoord string,
	config *entities.TariffConfig,
	depot *entities.Depot,
) entities.TentativeLeg {
	estimate := s.estimateDistance(ctx, originCoord, destCoord)

	haul := config.CostPerKm * estimate.DistanceKm
	fuel := config.FuelConsumptionPerKm * estimate.DistanceKm * config.FuelPricePerLiter

	leg := entities.TentativeLeg{
		Order:         order,
		Type:          legType,
		OriginAddress: originAddress,
		DestAddress:   destAddress,
		DistanceKm:    estimate.DistanceKm,
		EstimatedCost: round2(haul + fuel),
		TimeHours:     estimate.DurationHours,
	}
	if depot != nil {
		depotID := depot.ID
		depotName := depot.Name
		leg.DepotID = &depotID
		leg.DepotName = &depotName
	}
	return leg
}

// estimateDistance never fails: a provider error is logged and replaced
// by the documented fallback pair.
func (s *Route) estimateDistance(ctx context.Context, originCoord, destCoord string) entities.RouteEstimate {
	estimate, err := s.distance.Route(ctx, originCoord, destCoord)
	if err != nil {
		s.log.With(
			logger.NewField("origin", originCoord),
			logger.NewField("destination", destCoord),
			logger.NewField("error", err),
		).Warn("distance provider failed, using fallback estimate")

		return entities.RouteEstimate{
			DistanceKm:    fallbackDistanceKm,
			DurationHours: fallbackDurationHours,
		}
	}
	return *estimate
}

func (s *Route) resolveDestination(
	tl entities.TentativeLeg,
	shipmentEntity *entities.Shipment,
	depotsByID map[uuid.UUID]entities.Depot,
) (entities.Location, error) {
	if tl.DepotID != nil {
		depot, ok := depotsByID[*tl.DepotID]
		if !ok {
			return entities.Location{}, fmt.Errorf("%w: leg %d references depot %s", ErrUnresolvedWaypoint, tl.Order, *tl.DepotID)
		}
		return entities.Location{
			Address:   depot.Address,
			Latitude:  depot.Latitude,
			Longitude: depot.Longitude,
		}, nil
	}
	if tl.DestAddress != shipmentEntity.Destination.Address {
		return entities.Location{}, fmt.Errorf("%w: leg %d destination %q", ErrUnresolvedWaypoint, tl.Order, tl.DestAddress)
	}
	return shipmentEntity.Destination, nil
}

// formatCoordinates renders "longitude,latitude", the order the
// directions provider expects.
func formatCoordinates(latitude, longitude float64) string {
	return strconv.FormatFloat(longitude, 'f', -1, 64) + "," + strconv.FormatFloat(latitude, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
