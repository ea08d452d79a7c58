package entities

import (
	"time"

	"github.com/google/uuid"
)

// Depot is an intermediate storage waypoint with a daily holding cost.
type Depot struct {
	ID               uuid.UUID
	Name             string
	Address          string
	Latitude         float64
	Longitude        float64
	DailyStorageCost float64
	Active           bool
	CreatedAt        time.Time
}

type DepotModify struct {
	ID               *uuid.UUID
	Name             *string
	Address          *string
	Latitude         *float64
	Longitude        *float64
	DailyStorageCost *float64
	Active           *bool
}

// StoredContainer describes a container currently held at a depot and
// the planned leg that will move it on.
type StoredContainer struct {
	ContainerID    uuid.UUID
	Identification string
	ShipmentID     uuid.UUID
	ShipmentNumber string
	DepotID        uuid.UUID
	DepotName      string
	ArrivedAt      *time.Time
	NextLeg        *Leg
}
