package shipment

import (
	"logistics/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:         s.ID,
		Number:     s.Number,
		CustomerID: s.CustomerID,
		Container: entities.Container{
			ID:             s.Container.ID,
			Identification: s.Container.Identification,
			WeightKg:       s.Container.WeightKg,
			VolumeM3:       s.Container.VolumeM3,
			Status:         entities.ContainerStatusType(s.Container.Status),
			CurrentAddress: s.Container.CurrentAddress,
			CustomerID:     s.Container.CustomerID,
		},
		Origin: entities.Location{
			Address:   s.OriginAddress,
			Latitude:  s.OriginLat,
			Longitude: s.OriginLon,
		},
		Destination: entities.Location{
			Address:   s.DestAddress,
			Latitude:  s.DestLat,
			Longitude: s.DestLon,
		},
		Status:             entities.ShipmentStatusType(s.Status),
		EstimatedCost:      s.EstimatedCost,
		EstimatedTimeHours: s.EstimatedTimeHours,
		FinalCost:          s.FinalCost,
		FinalTimeHours:     s.FinalTimeHours,
		CreatedAt:          s.CreatedAt,
		DeliveredAt:        s.DeliveredAt,
	}
}

func ToDomainContainer(c *ContainerDB) *entities.Container {
	if c == nil {
		return nil
	}

	return &entities.Container{
		ID:             c.ID,
		Identification: c.Identification,
		WeightKg:       c.WeightKg,
		VolumeM3:       c.VolumeM3,
		Status:         entities.ContainerStatusType(c.Status),
		CurrentAddress: c.CurrentAddress,
		CustomerID:     c.CustomerID,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{
		ID:                 shipmentModify.ID,
		EstimatedCost:      shipmentModify.EstimatedCost,
		EstimatedTimeHours: shipmentModify.EstimatedTimeHours,
		FinalCost:          shipmentModify.FinalCost,
		FinalTimeHours:     shipmentModify.FinalTimeHours,
		DeliveredAt:        shipmentModify.DeliveredAt,
	}

	if shipmentModify.Status != nil {
		status := shipmentModify.Status.String()
		shipmentDB.Status = &status
	}

	return shipmentDB
}

func FromDomainContainerModify(containerModify *entities.ContainerModify) *ContainerModifyDB {
	if containerModify == nil {
		return nil
	}
	containerDB := &ContainerModifyDB{
		ID:             containerModify.ID,
		CurrentAddress: containerModify.CurrentAddress,
	}

	if containerModify.Status != nil {
		status := containerModify.Status.String()
		containerDB.Status = &status
	}

	return containerDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
