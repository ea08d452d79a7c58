// Package convert maps domain entities onto the generated API DTOs.
// Kept in one place because several handlers return the same shapes.
package convert

import (
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
)

func Location(l entities.Location) dto.Location {
	return dto.Location{
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

func Container(c entities.Container) dto.Container {
	return dto.Container{
		ID:             c.ID,
		Identification: c.Identification,
		WeightKg:       c.WeightKg,
		VolumeM3:       c.VolumeM3,
		Status:         c.Status.String(),
		CurrentAddress: c.CurrentAddress,
	}
}

func Shipment(s *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		ID:                 s.ID,
		Number:             s.Number,
		CustomerID:         s.CustomerID,
		Container:          Container(s.Container),
		Origin:             Location(s.Origin),
		Destination:        Location(s.Destination),
		Status:             s.Status.String(),
		EstimatedCost:      s.EstimatedCost,
		EstimatedTimeHours: s.EstimatedTimeHours,
		FinalCost:          s.FinalCost,
		FinalTimeHours:     s.FinalTimeHours,
		CreatedAt:          s.CreatedAt,
		DeliveredAt:        s.DeliveredAt,
	}
}

func ShipmentList(shipments []entities.Shipment) []dto.Shipment {
	result := make([]dto.Shipment, len(shipments))
	for i := range shipments {
		result[i] = Shipment(&shipments[i])
	}
	return result
}

func Leg(l *entities.Leg) dto.Leg {
	return dto.Leg{
		ID:             l.ID,
		RouteID:        l.RouteID,
		Order:          l.Order,
		Type:           l.Type.String(),
		Status:         l.Status.String(),
		Origin:         Location(l.Origin),
		Destination:    Location(l.Destination),
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

func LegList(legs []entities.Leg) []dto.Leg {
	result := make([]dto.Leg, len(legs))
	for i := range legs {
		result[i] = Leg(&legs[i])
	}
	return result
}

func Route(r *entities.Route) dto.Route {
	return dto.Route{
		ID:         r.ID,
		ShipmentID: r.ShipmentID,
		LegCount:   r.LegCount,
		DepotCount: r.DepotCount,
		Legs:       LegList(r.Legs),
		CreatedAt:  r.CreatedAt,
	}
}

func TentativeRoute(t *entities.TentativeRoute) dto.TentativeRoute {
	legs := make([]dto.TentativeLeg, len(t.Legs))
	for i, l := range t.Legs {
		legs[i] = dto.TentativeLeg{
			Order:         l.Order,
			Type:          l.Type.String(),
			OriginAddress: l.OriginAddress,
			DestAddress:   l.DestAddress,
			DistanceKm:    l.DistanceKm,
			EstimatedCost: l.EstimatedCost,
			TimeHours:     l.TimeHours,
			DepotID:       l.DepotID,
			DepotName:     l.DepotName,
		}
	}

	return dto.TentativeRoute{
		ShipmentID:      t.ShipmentID,
		Legs:            legs,
		TotalCost:       t.TotalCost,
		TotalTimeHours:  t.TotalTimeHours,
		TotalDistanceKm: t.TotalDistanceKm,
	}
}

func Tracking(t *entities.ShipmentTracking) dto.ShipmentTracking {
	tracking := dto.ShipmentTracking{
		ShipmentID:         t.ShipmentID,
		Number:             t.Number,
		Status:             t.Status.String(),
		Container:          Container(t.Container),
		EstimatedCost:      t.EstimatedCost,
		EstimatedTimeHours: t.EstimatedTimeHours,
		FinalCost:          t.FinalCost,
		FinalTimeHours:     t.FinalTimeHours,
		CreatedAt:          t.CreatedAt,
	}

	if t.CurrentLeg != nil {
		leg := Leg(t.CurrentLeg)
		tracking.CurrentLeg = &leg
	}

	return tracking
}

func Depot(d *entities.Depot) dto.Depot {
	return dto.Depot{
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

func DepotList(depots []entities.Depot) []dto.Depot {
	result := make([]dto.Depot, len(depots))
	for i := range depots {
		result[i] = Depot(&depots[i])
	}
	return result
}

func StoredContainer(s *entities.StoredContainer) dto.StoredContainer {
	stored := dto.StoredContainer{
		ContainerID:    s.ContainerID,
		Identification: s.Identification,
		ShipmentID:     s.ShipmentID,
		ShipmentNumber: s.ShipmentNumber,
		DepotID:        s.DepotID,
		DepotName:      s.DepotName,
		ArrivedAt:      s.ArrivedAt,
	}

	if s.NextLeg != nil {
		leg := Leg(s.NextLeg)
		stored.NextLeg = &leg
	}

	return stored
}

func StoredContainerList(stored []entities.StoredContainer) []dto.StoredContainer {
	result := make([]dto.StoredContainer, len(stored))
	for i := range stored {
		result[i] = StoredContainer(&stored[i])
	}
	return result
}

func CostBreakdown(b *entities.CostBreakdown) dto.CostBreakdown {
	return dto.CostBreakdown{
		Total:      b.Total,
		Haul:       b.Haul,
		Fuel:       b.Fuel,
		Storage:    b.Storage,
		Management: b.Management,
	}
}
