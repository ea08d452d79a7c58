package route

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	routeSvc "logistics/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const legColumns = `id, route_id, leg_order, leg_type, status,
	origin_address, origin_lat, origin_lon,
	dest_address, dest_lat, dest_lon,
	distance_km, estimated_cost, actual_cost,
	estimated_start, estimated_end, actual_start, actual_end,
	truck_id, depot_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the route and its legs. Meant to run inside the
// commit transaction; the unique shipment_id index rejects a second
// route for the same shipment.
func (r *Repository) Create(ctx context.Context, routeEntity entities.Route) (*entities.Route, error) {
	query := `INSERT INTO routes (id, shipment_id, leg_count, depot_count)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		routeEntity.ID,
		routeEntity.ShipmentID,
		routeEntity.LegCount,
		routeEntity.DepotCount,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, routeSvc.ErrRouteAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	legQuery := `INSERT INTO legs (id, route_id, leg_order, leg_type, status,
			origin_address, origin_lat, origin_lon,
			dest_address, dest_lat, dest_lon,
			distance_km, estimated_cost, estimated_start, estimated_end, depot_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	for _, leg := range routeEntity.Legs {
		_, err = r.querier.Exec(
			ctx,
			legQuery,
			leg.ID,
			routeEntity.ID,
			leg.Order,
			leg.Type.String(),
			leg.Status.String(),
			leg.Origin.Address,
			leg.Origin.Latitude,
			leg.Origin.Longitude,
			leg.Destination.Address,
			leg.Destination.Latitude,
			leg.Destination.Longitude,
			leg.DistanceKm,
			leg.EstimatedCost,
			leg.EstimatedStart,
			leg.EstimatedEnd,
			leg.DepotID,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository create error: %w", err)
		}
	}

	return r.GetByShipmentID(ctx, routeEntity.ShipmentID)
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID uuid.UUID) (*entities.Route, error) {
	query := `SELECT id, shipment_id, leg_count, depot_count, created_at
		FROM routes
		WHERE shipment_id = $1`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, shipmentID).
		Scan(
			&routeModel.ID,
			&routeModel.ShipmentID,
			&routeModel.LegCount,
			&routeModel.DepotCount,
			&routeModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, routeSvc.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyshipment error: %w", err)
	}

	legs, err := r.legsByRoute(ctx, routeModel.ID, false)
	if err != nil {
		return nil, err
	}

	return ToDomain(&routeModel, legs), nil
}

func (r *Repository) legsByRoute(ctx context.Context, routeID uuid.UUID, forUpdate bool) ([]LegDB, error) {
	query := `SELECT ` + legColumns + `
	FROM legs
	WHERE route_id = $1
	ORDER BY leg_order`

	if forUpdate {
		query += `
	FOR UPDATE`
	}

	rows, err := r.querier.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository legs error: %w", err)
	}
	defer rows.Close()

	legModels := make([]LegDB, 0, 4)
	for rows.Next() {
		var legModel LegDB
		err := rows.Scan(legScanTargets(&legModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository legs error: %w", err)
		}
		legModels = append(legModels, legModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository legs error: %w", err)
	}

	return legModels, nil
}

func legScanTargets(m *LegDB) []interface{} {
	return []interface{}{
		&m.ID, &m.RouteID, &m.LegOrder, &m.LegType, &m.Status,
		&m.OriginAddress, &m.OriginLat, &m.OriginLon,
		&m.DestAddress, &m.DestLat, &m.DestLon,
		&m.DistanceKm, &m.EstimatedCost, &m.ActualCost,
		&m.EstimatedStart, &m.EstimatedEnd, &m.ActualStart, &m.ActualEnd,
		&m.TruckID, &m.DepotID,
	}
}
