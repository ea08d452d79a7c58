package route

import (
	"time"

	"github.com/google/uuid"
)

type RouteDB struct {
	ID         uuid.UUID
	ShipmentID uuid.UUID
	LegCount   int
	DepotCount int
	CreatedAt  time.Time
}

type LegDB struct {
	ID             uuid.UUID
	RouteID        uuid.UUID
	LegOrder       int
	LegType        string
	Status         string
	OriginAddress  string
	OriginLat      float64
	OriginLon      float64
	DestAddress    string
	DestLat        float64
	DestLon        float64
	DistanceKm     float64
	EstimatedCost  float64
	ActualCost     *float64
	EstimatedStart time.Time
	EstimatedEnd   time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time
	TruckID        *uuid.UUID
	DepotID        *uuid.UUID
}

type LegModifyDB struct {
	ID          *uuid.UUID
	Status      *string
	ActualCost  *float64
	ActualStart *time.Time
	ActualEnd   *time.Time
	TruckID     *uuid.UUID
}

// StoredContainerDB is the depot inventory row: a container whose
// onward leg starts at the depot and has not started yet.
type StoredContainerDB struct {
	ContainerID    uuid.UUID
	Identification string
	ShipmentID     uuid.UUID
	ShipmentNumber string
	DepotID        uuid.UUID
	DepotName      string
	ArrivedAt      *time.Time
	NextLeg        LegDB
}
