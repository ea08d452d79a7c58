package shipment

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentDB is the shipments row joined with its container row.
type ShipmentDB struct {
	ID                 uuid.UUID
	Number             string
	CustomerID         uuid.UUID
	OriginAddress      string
	OriginLat          float64
	OriginLon          float64
	DestAddress        string
	DestLat            float64
	DestLon            float64
	Status             string
	EstimatedCost      *float64
	EstimatedTimeHours *float64
	FinalCost          *float64
	FinalTimeHours     *float64
	CreatedAt          time.Time
	DeliveredAt        *time.Time

	Container ContainerDB
}

type ContainerDB struct {
	ID             uuid.UUID
	Identification string
	WeightKg       float64
	VolumeM3       float64
	Status         string
	CurrentAddress string
	CustomerID     uuid.UUID
}

type ShipmentModifyDB struct {
	ID                 *uuid.UUID
	Status             *string
	EstimatedCost      *float64
	EstimatedTimeHours *float64
	FinalCost          *float64
	FinalTimeHours     *float64
	DeliveredAt        *time.Time
}

type ContainerModifyDB struct {
	ID             *uuid.UUID
	Status         *string
	CurrentAddress *string
}
