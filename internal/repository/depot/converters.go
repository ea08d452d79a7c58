package depot

import (
	"logistics/internal/entities"
)

func ToDomain(d *DepotDB) *entities.Depot {
	if d == nil {
		return nil
	}

	return &entities.Depot{
		ID:               d.ID,
		Name:             d.Name,
		Address:          d.Address,
		Latitude:         d.Latitude,
		Longitude:        d.Longitude,
		DailyStorageCost: d.DailyStorageCost,
		Active:           d.Active,
		CreatedAt:        d.CreatedAt,
	}
}

func FromDomainModify(depotModify *entities.DepotModify) *DepotModifyDB {
	if depotModify == nil {
		return nil
	}

	return &DepotModifyDB{
		ID:               depotModify.ID,
		Name:             depotModify.Name,
		Address:          depotModify.Address,
		Latitude:         depotModify.Latitude,
		Longitude:        depotModify.Longitude,
		DailyStorageCost: depotModify.DailyStorageCost,
		Active:           depotModify.Active,
	}
}

func ToDomainList(depotsDB []DepotDB) []entities.Depot {
	if len(depotsDB) == 0 {
		return []entities.Depot{}
	}

	result := make([]entities.Depot, len(depotsDB))
	for i, depotDB := range depotsDB {
		result[i] = *ToDomain(&depotDB)
	}
	return result
}
