package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectShipment = `
	SELECT s.id, s.number, s.customer_id,
		s.origin_address, s.origin_lat, s.origin_lon,
		s.dest_address, s.dest_lat, s.dest_lon,
		s.status, s.estimated_cost, s.estimated_time_hours,
		s.final_cost, s.final_time_hours, s.created_at, s.delivered_at,
		c.id, c.identification, c.weight_kg, c.volume_m3,
		c.status, c.current_address, c.customer_id
	FROM shipments s
	JOIN containers c ON c.shipment_id = s.id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentEntity entities.Shipment) (*entities.Shipment, error) {
	query := `INSERT INTO shipments (id, number, customer_id,
			origin_address, origin_lat, origin_lon,
			dest_address, dest_lat, dest_lon,
			status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.querier.Exec(
		ctx,
		query,
		shipmentEntity.ID,
		shipmentEntity.Number,
		shipmentEntity.CustomerID,
		shipmentEntity.Origin.Address,
		shipmentEntity.Origin.Latitude,
		shipmentEntity.Origin.Longitude,
		shipmentEntity.Destination.Address,
		shipmentEntity.Destination.Latitude,
		shipmentEntity.Destination.Longitude,
		shipmentEntity.Status.String(),
		shipmentEntity.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	query = `INSERT INTO containers (id, shipment_id, identification,
			weight_kg, volume_m3, status, current_address, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	container := shipmentEntity.Container
	_, err = r.querier.Exec(
		ctx,
		query,
		container.ID,
		shipmentEntity.ID,
		container.Identification,
		container.WeightKg,
		container.VolumeM3,
		container.Status.String(),
		container.CurrentAddress,
		container.CustomerID,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrContainerConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return r.GetByID(ctx, shipmentEntity.ID)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	query := selectShipment + `
	WHERE s.id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByNumber(ctx context.Context, number string) (*entities.Shipment, error) {
	query := selectShipment + `
	WHERE s.number = $1`

	return r.getOne(ctx, query, number)
}

func (r *Repository) GetByRouteID(ctx context.Context, routeID uuid.UUID) (*entities.Shipment, error) {
	query := selectShipment + `
	JOIN routes rt ON rt.shipment_id = s.id
	WHERE rt.id = $1`

	return r.getOne(ctx, query, routeID)
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.EstimatedCost != nil {
		builder = builder.Set("estimated_cost", shipmentModifyModel.EstimatedCost)
	}
	if shipmentModifyModel.EstimatedTimeHours != nil {
		builder = builder.Set("estimated_time_hours", shipmentModifyModel.EstimatedTimeHours)
	}
	if shipmentModifyModel.FinalCost != nil {
		builder = builder.Set("final_cost", shipmentModifyModel.FinalCost)
	}
	if shipmentModifyModel.FinalTimeHours != nil {
		builder = builder.Set("final_time_hours", shipmentModifyModel.FinalTimeHours)
	}
	if shipmentModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", shipmentModifyModel.DeliveredAt)
	}

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var id uuid.UUID
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) UpdateContainer(ctx context.Context, containerModifyEntity entities.ContainerModify) (*entities.Container, error) {
	containerModifyModel := FromDomainContainerModify(&containerModifyEntity)

	builder := qb.
		Update("containers")

	if containerModifyModel.Status != nil {
		builder = builder.Set("status", containerModifyModel.Status)
	}
	if containerModifyModel.CurrentAddress != nil {
		builder = builder.Set("current_address", containerModifyModel.CurrentAddress)
	}

	builder = builder.
		Where(sq.Eq{"id": containerModifyModel.ID}).
		Suffix("RETURNING id, identification, weight_kg, volume_m3, status, current_address, customer_id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository updatecontainer error: %w", err)
	}

	var containerModel ContainerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&containerModel.ID,
			&containerModel.Identification,
			&containerModel.WeightKg,
			&containerModel.VolumeM3,
			&containerModel.Status,
			&containerModel.CurrentAddress,
			&containerModel.CustomerID,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository updatecontainer error: %w", err)
	}

	return ToDomainContainer(&containerModel), nil
}

func (r *Repository) ExistsContainerIdentification(ctx context.Context, identification string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM containers WHERE identification = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, identification).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected shipment repository exists error: %w", err)
	}

	return exists, nil
}

// NextDailySequence claims the next number for the day. The upsert
// keeps the increment atomic under concurrent creates.
func (r *Repository) NextDailySequence(ctx context.Context, dateKey string) (int64, error) {
	query := `INSERT INTO shipment_counters (date_key, last_value)
		VALUES ($1, 1)
		ON CONFLICT (date_key)
		DO UPDATE SET last_value = shipment_counters.last_value + 1
		RETURNING last_value`

	var sequence int64
	err := r.querier.QueryRow(ctx, query, dateKey).Scan(&sequence)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository sequence error: %w", err)
	}

	return sequence, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]entities.Shipment, error) {
	query := selectShipment + `
	WHERE s.status IN ('draft', 'scheduled', 'in_transit')
	ORDER BY s.created_at`

	return r.getMany(ctx, query)
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entities.Shipment, error) {
	query := selectShipment + `
	WHERE s.customer_id = $1
	ORDER BY s.created_at DESC`

	return r.getMany(ctx, query, customerID)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Shipment, error) {
	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) getMany(ctx context.Context, query string, args ...interface{}) ([]entities.Shipment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		err := rows.Scan(scanTargets(&shipmentModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func scanTargets(m *ShipmentDB) []interface{} {
	return []interface{}{
		&m.ID, &m.Number, &m.CustomerID,
		&m.OriginAddress, &m.OriginLat, &m.OriginLon,
		&m.DestAddress, &m.DestLat, &m.DestLon,
		&m.Status, &m.EstimatedCost, &m.EstimatedTimeHours,
		&m.FinalCost, &m.FinalTimeHours, &m.CreatedAt, &m.DeliveredAt,
		&m.Container.ID, &m.Container.Identification, &m.Container.WeightKg,
		&m.Container.VolumeM3, &m.Container.Status, &m.Container.CurrentAddress,
		&m.Container.CustomerID,
	}
}
