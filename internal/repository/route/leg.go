package route

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	legSvc "logistics/internal/service/leg"
)

func (r *Repository) GetLegByID(ctx context.Context, id uuid.UUID) (*entities.Leg, error) {
	return r.getLeg(ctx, id, false)
}

func (r *Repository) GetLegByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Leg, error) {
	return r.getLeg(ctx, id, true)
}

func (r *Repository) getLeg(ctx context.Context, id uuid.UUID, forUpdate bool) (*entities.Leg, error) {
	query := `SELECT ` + legColumns + `
	FROM legs
	WHERE id = $1`

	if forUpdate {
		query += `
	FOR UPDATE`
	}

	var legModel LegDB
	err := r.querier.QueryRow(ctx, query, id).Scan(legScanTargets(&legModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, legSvc.ErrLegNotFound
		}
		return nil, fmt.Errorf("unexpected leg repository get error: %w", err)
	}

	return ToDomainLeg(&legModel), nil
}

func (r *Repository) GetLegsByRouteForUpdate(ctx context.Context, routeID uuid.UUID) ([]entities.Leg, error) {
	legModels, err := r.legsByRoute(ctx, routeID, true)
	if err != nil {
		return nil, err
	}

	return ToDomainLegList(legModels), nil
}

func (r *Repository) UpdateLeg(ctx context.Context, legModifyEntity entities.LegModify) (*entities.Leg, error) {
	legModifyModel := FromDomainLegModify(&legModifyEntity)

	builder := qb.
		Update("legs")

	if legModifyModel.Status != nil {
		builder = builder.Set("status", legModifyModel.Status)
	}
	if legModifyModel.ActualCost != nil {
		builder = builder.Set("actual_cost", legModifyModel.ActualCost)
	}
	if legModifyModel.ActualStart != nil {
		builder = builder.Set("actual_start", legModifyModel.ActualStart)
	}
	if legModifyModel.ActualEnd != nil {
		builder = builder.Set("actual_end", legModifyModel.ActualEnd)
	}
	if legModifyModel.TruckID != nil {
		builder = builder.Set("truck_id", legModifyModel.TruckID)
	}

	builder = builder.
		Where(sq.Eq{"id": legModifyModel.ID}).
		Suffix("RETURNING " + legColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected leg repository update error: %w", err)
	}

	var legModel LegDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(legScanTargets(&legModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, legSvc.ErrLegNotFound
		}
		return nil, fmt.Errorf("unexpected leg repository update error: %w", err)
	}

	return ToDomainLeg(&legModel), nil
}

func (r *Repository) GetActiveLegsByTruck(ctx context.Context, truckID uuid.UUID) ([]entities.Leg, error) {
	query := `SELECT ` + legColumns + `
	FROM legs
	WHERE truck_id = $1 AND status IN ('assigned', 'started')
	ORDER BY estimated_start`

	return r.listLegs(ctx, query, truckID)
}

func (r *Repository) GetActiveLegs(ctx context.Context) ([]entities.Leg, error) {
	query := `SELECT ` + legColumns + `
	FROM legs
	WHERE status IN ('assigned', 'started')
	ORDER BY estimated_start`

	return r.listLegs(ctx, query)
}

// GetCurrentLegByShipment returns the lowest-order leg of the
// shipment's route that has not finished yet. Legs run strictly in
// order, so that leg is the one underway or up next. Nil when the
// shipment has no route or the route is complete.
func (r *Repository) GetCurrentLegByShipment(ctx context.Context, shipmentID uuid.UUID) (*entities.Leg, error) {
	query := `SELECT ` + prefixedLegColumns("l") + `
	FROM legs l
	JOIN routes rt ON rt.id = l.route_id
	WHERE rt.shipment_id = $1 AND l.status IN ('estimated', 'assigned', 'started')
	ORDER BY l.leg_order
	LIMIT 1`

	var legModel LegDB
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(legScanTargets(&legModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected leg repository current error: %w", err)
	}

	return ToDomainLeg(&legModel), nil
}

// FindStoredContainers lists containers sitting at the depot: the leg
// that brought them there has finished and the onward leg has not
// started.
func (r *Repository) FindStoredContainers(ctx context.Context, depotID uuid.UUID) ([]entities.StoredContainer, error) {
	query := `SELECT c.id, c.identification, s.id, s.number, d.id, d.name, arrived.actual_end,
		` + prefixedLegColumns("next") + `
	FROM legs arrived
	JOIN routes rt ON rt.id = arrived.route_id
	JOIN shipments s ON s.id = rt.shipment_id
	JOIN containers c ON c.shipment_id = s.id
	JOIN depots d ON d.id = arrived.depot_id
	JOIN legs next ON next.route_id = rt.id AND next.leg_order = arrived.leg_order + 1
	WHERE arrived.depot_id = $1
		AND arrived.status = 'finished'
		AND next.status IN ('estimated', 'assigned')
	ORDER BY arrived.actual_end`

	rows, err := r.querier.Query(ctx, query, depotID)
	if err != nil {
		return nil, fmt.Errorf("unexpected leg repository stored error: %w", err)
	}
	defer rows.Close()

	storedModels := make([]StoredContainerDB, 0, 8)
	for rows.Next() {
		var storedModel StoredContainerDB
		targets := []interface{}{
			&storedModel.ContainerID,
			&storedModel.Identification,
			&storedModel.ShipmentID,
			&storedModel.ShipmentNumber,
			&storedModel.DepotID,
			&storedModel.DepotName,
			&storedModel.ArrivedAt,
		}
		targets = append(targets, legScanTargets(&storedModel.NextLeg)...)

		err := rows.Scan(targets...)
		if err != nil {
			return nil, fmt.Errorf("unexpected leg repository stored error: %w", err)
		}
		storedModels = append(storedModels, storedModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected leg repository stored error: %w", err)
	}

	result := make([]entities.StoredContainer, len(storedModels))
	for i := range storedModels {
		result[i] = *ToDomainStoredContainer(&storedModels[i])
	}
	return result, nil
}

func (r *Repository) listLegs(ctx context.Context, query string, args ...interface{}) ([]entities.Leg, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected leg repository list error: %w", err)
	}
	defer rows.Close()

	legModels := make([]LegDB, 0, 8)
	for rows.Next() {
		var legModel LegDB
		err := rows.Scan(legScanTargets(&legModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected leg repository list error: %w", err)
		}
		legModels = append(legModels, legModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected leg repository list error: %w", err)
	}

	return ToDomainLegList(legModels), nil
}

func prefixedLegColumns(alias string) string {
	return alias + `.id, ` + alias + `.route_id, ` + alias + `.leg_order, ` + alias + `.leg_type, ` + alias + `.status,
		` + alias + `.origin_address, ` + alias + `.origin_lat, ` + alias + `.origin_lon,
		` + alias + `.dest_address, ` + alias + `.dest_lat, ` + alias + `.dest_lon,
		` + alias + `.distance_km, ` + alias + `.estimated_cost, ` + alias + `.actual_cost,
		` + alias + `.estimated_start, ` + alias + `.estimated_end, ` + alias + `.actual_start, ` + alias + `.actual_end,
		` + alias + `.truck_id, ` + alias + `.depot_id`
}
