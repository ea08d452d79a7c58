package entities

import (
	"time"

	"github.com/google/uuid"
)

// Route is the committed, ordered sequence of legs for one shipment.
// At most one route exists per shipment.
type Route struct {
	ID         uuid.UUID
	ShipmentID uuid.UUID
	LegCount   int
	DepotCount int
	Legs       []Leg
	CreatedAt  time.Time
}

// TentativeLeg is a planned but not yet persisted leg.
type TentativeLeg struct {
	Order         int
	Type          LegType
	OriginAddress string
	DestAddress   string
	DistanceKm    float64
	EstimatedCost float64
	TimeHours     float64
	DepotID       *uuid.UUID
	DepotName     *string
}

// TentativeRoute is the result of planning: legs plus running totals.
// Planning has no persistence side effects.
type TentativeRoute struct {
	ShipmentID      uuid.UUID
	Legs            []TentativeLeg
	TotalCost       float64
	TotalTimeHours  float64
	TotalDistanceKm float64
}
