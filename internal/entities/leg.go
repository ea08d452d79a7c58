package entities

import (
	"time"

	"github.com/google/uuid"
)

// Leg is one truck-borne segment of a committed route. Order is 1-based
// and contiguous within a route; estimated times chain so that a leg's
// estimated end equals the next leg's estimated start.
type Leg struct {
	ID             uuid.UUID
	RouteID        uuid.UUID
	Order          int
	Type           LegType
	Status         LegStatusType
	Origin         Location
	Destination    Location
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

type LegType string

const (
	LegOriginDepot       LegType = "origin_depot"
	LegDepotDepot        LegType = "depot_depot"
	LegDepotDestination  LegType = "depot_destination"
	LegOriginDestination LegType = "origin_destination"
)

func (t LegType) String() string {
	return string(t)
}

type LegStatusType string

const (
	LegEstimated LegStatusType = "estimated"
	LegAssigned  LegStatusType = "assigned"
	LegStarted   LegStatusType = "started"
	LegFinished  LegStatusType = "finished"
	// LegCancelled is reachable only through administrative override,
	// never through the lifecycle operations.
	LegCancelled LegStatusType = "cancelled"
)

func (s LegStatusType) String() string {
	return string(s)
}

type LegModify struct {
	ID          *uuid.UUID
	Status      *LegStatusType
	ActualCost  *float64
	ActualStart *time.Time
	ActualEnd   *time.Time
	TruckID     *uuid.UUID
}
