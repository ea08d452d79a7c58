package depot

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/depot"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, depotModifyEntity entities.DepotModify) (*entities.Depot, error) {
	depotModifyModel := FromDomainModify(&depotModifyEntity)

	query := `INSERT INTO depots (id, name, address, latitude, longitude, daily_storage_cost, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, name, address, latitude, longitude, daily_storage_cost, active, created_at`

	var depotModel DepotDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.New(),
		depotModifyModel.Name,
		depotModifyModel.Address,
		depotModifyModel.Latitude,
		depotModifyModel.Longitude,
		depotModifyModel.DailyStorageCost,
	).Scan(
		&depotModel.ID,
		&depotModel.Name,
		&depotModel.Address,
		&depotModel.Latitude,
		&depotModel.Longitude,
		&depotModel.DailyStorageCost,
		&depotModel.Active,
		&depotModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository create error: %w", err)
	}

	return ToDomain(&depotModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Depot, error) {
	query := `SELECT id, name, address, latitude, longitude, daily_storage_cost, active, created_at
		FROM depots
		WHERE id = $1`

	var depotModel DepotDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&depotModel.ID,
			&depotModel.Name,
			&depotModel.Address,
			&depotModel.Latitude,
			&depotModel.Longitude,
			&depotModel.DailyStorageCost,
			&depotModel.Active,
			&depotModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, depot.ErrDepotNotFound
		}
		return nil, fmt.Errorf("unexpected depot repository getbyid error: %w", err)
	}

	return ToDomain(&depotModel), nil
}

// GetByIDs returns the depots for ids, preserving the order of ids.
// Ids with no matching depot are simply absent from the result.
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Depot, error) {
	if len(ids) == 0 {
		return []entities.Depot{}, nil
	}

	query := `SELECT id, name, address, latitude, longitude, daily_storage_cost, active, created_at
		FROM depots
		WHERE id = ANY($1)`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository getbyids error: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]DepotDB, len(ids))
	for rows.Next() {
		var depotModel DepotDB
		err := rows.Scan(
			&depotModel.ID,
			&depotModel.Name,
			&depotModel.Address,
			&depotModel.Latitude,
			&depotModel.Longitude,
			&depotModel.DailyStorageCost,
			&depotModel.Active,
			&depotModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected depot repository getbyids error: %w", err)
		}
		byID[depotModel.ID] = depotModel
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository getbyids error: %w", err)
	}

	result := make([]entities.Depot, 0, len(byID))
	for _, id := range ids {
		if depotModel, ok := byID[id]; ok {
			result = append(result, *ToDomain(&depotModel))
		}
	}
	return result, nil
}

func (r *Repository) GetAll(ctx context.Context, onlyActive bool) ([]entities.Depot, error) {
	builder := qb.
		Select("id", "name", "address", "latitude", "longitude", "daily_storage_cost", "active", "created_at").
		From("depots").
		OrderBy("name")

	if onlyActive {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository getall error: %w", err)
	}
	defer rows.Close()

	depotModels := make([]DepotDB, 0, 8)
	for rows.Next() {
		var depotModel DepotDB
		err := rows.Scan(
			&depotModel.ID,
			&depotModel.Name,
			&depotModel.Address,
			&depotModel.Latitude,
			&depotModel.Longitude,
			&depotModel.DailyStorageCost,
			&depotModel.Active,
			&depotModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected depot repository getall error: %w", err)
		}
		depotModels = append(depotModels, depotModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository getall error: %w", err)
	}

	return ToDomainList(depotModels), nil
}

func (r *Repository) Update(ctx context.Context, depotModifyEntity entities.DepotModify) (*entities.Depot, error) {
	depotModifyModel := FromDomainModify(&depotModifyEntity)

	builder := qb.
		Update("depots")

	if depotModifyModel.Name != nil {
		builder = builder.Set("name", depotModifyModel.Name)
	}
	if depotModifyModel.Address != nil {
		builder = builder.Set("address", depotModifyModel.Address)
	}
	if depotModifyModel.Latitude != nil {
		builder = builder.Set("latitude", depotModifyModel.Latitude)
	}
	if depotModifyModel.Longitude != nil {
		builder = builder.Set("longitude", depotModifyModel.Longitude)
	}
	if depotModifyModel.DailyStorageCost != nil {
		builder = builder.Set("daily_storage_cost", depotModifyModel.DailyStorageCost)
	}
	if depotModifyModel.Active != nil {
		builder = builder.Set("active", depotModifyModel.Active)
	}

	builder = builder.
		Where(sq.Eq{"id": depotModifyModel.ID}).
		Suffix("RETURNING id, name, address, latitude, longitude, daily_storage_cost, active, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository update error: %w", err)
	}

	var depotModel DepotDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&depotModel.ID,
			&depotModel.Name,
			&depotModel.Address,
			&depotModel.Latitude,
			&depotModel.Longitude,
			&depotModel.DailyStorageCost,
			&depotModel.Active,
			&depotModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, depot.ErrDepotNotFound
		}
		return nil, fmt.Errorf("unexpected depot repository update error: %w", err)
	}

	return ToDomain(&depotModel), nil
}
