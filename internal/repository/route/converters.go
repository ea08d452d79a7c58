package route

import (
	"logistics/internal/entities"
)

func ToDomain(r *RouteDB, legs []LegDB) *entities.Route {
	if r == nil {
		return nil
	}

	return &entities.Route{
		ID:         r.ID,
		ShipmentID: r.ShipmentID,
		LegCount:   r.LegCount,
		DepotCount: r.DepotCount,
		Legs:       ToDomainLegList(legs),
		CreatedAt:  r.CreatedAt,
	}
}

func ToDomainLeg(l *LegDB) *entities.Leg {
	if l == nil {
		return nil
	}

	return &entities.Leg{
		ID:      l.ID,
		RouteID: l.RouteID,
		Order:   l.LegOrder,
		Type:    entities.LegType(l.LegType),
		Status:  entities.LegStatusType(l.Status),
		Origin: entities.Location{
			Address:   l.OriginAddress,
			Latitude:  l.OriginLat,
			Longitude: l.OriginLon,
		},
		Destination: entities.Location{
			Address:   l.DestAddress,
			Latitude:  l.DestLat,
			Longitude: l.DestLon,
		},
		DistanceKm:     l.DistanceKm,
		EstimatedCost:  l.EstimatedCost,
		ActualCost:     l.ActualCost,
		EstimatedStart: l.EstimatedStart,
		EstimatedEnd:   l.EstimatedEnd,
		ActualStart:    l.ActualStart,
		ActualEnd:      l.ActualEnd,
		TruckID:        l.TruckID,
		DepotID:        l.DepotID,
	}
}

func FromDomainLegModify(legModify *entities.LegModify) *LegModifyDB {
	if legModify == nil {
		return nil
	}
	legDB := &LegModifyDB{
		ID:          legModify.ID,
		ActualCost:  legModify.ActualCost,
		ActualStart: legModify.ActualStart,
		ActualEnd:   legModify.ActualEnd,
		TruckID:     legModify.TruckID,
	}

	if legModify.Status != nil {
		status := legModify.Status.String()
		legDB.Status = &status
	}

	return legDB
}

func ToDomainLegList(legsDB []LegDB) []entities.Leg {
	if len(legsDB) == 0 {
		return []entities.Leg{}
	}

	result := make([]entities.Leg, len(legsDB))
	for i, legDB := range legsDB {
		result[i] = *ToDomainLeg(&legDB)
	}
	return result
}

func ToDomainStoredContainer(s *StoredContainerDB) *entities.StoredContainer {
	if s == nil {
		return nil
	}

	return &entities.StoredContainer{
		ContainerID:    s.ContainerID,
		Identification: s.Identification,
		ShipmentID:     s.ShipmentID,
		ShipmentNumber: s.ShipmentNumber,
		DepotID:        s.DepotID,
		DepotName:      s.DepotName,
		ArrivedAt:      s.ArrivedAt,
		NextLeg:        ToDomainLeg(&s.NextLeg),
	}
}
