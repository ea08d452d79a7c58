package entities

import (
	"time"

	"github.com/google/uuid"
)

// Shipment is a customer's request to move one container from an origin
// to a destination. It owns exactly one Container.
type Shipment struct {
	ID                 uuid.UUID
	Number             string
	CustomerID         uuid.UUID
	Container          Container
	Origin             Location
	Destination        Location
	Status             ShipmentStatusType
	EstimatedCost      *float64
	EstimatedTimeHours *float64
	FinalCost          *float64
	FinalTimeHours     *float64
	CreatedAt          time.Time
	DeliveredAt        *time.Time
}

type ShipmentStatusType string

const (
	ShipmentDraft     ShipmentStatusType = "draft"
	ShipmentScheduled ShipmentStatusType = "scheduled"
	ShipmentInTransit ShipmentStatusType = "in_transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentCancelled ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

type ShipmentModify struct {
	ID                 *uuid.UUID
	Status             *ShipmentStatusType
	EstimatedCost      *float64
	EstimatedTimeHours *float64
	FinalCost          *float64
	FinalTimeHours     *float64
	DeliveredAt        *time.Time
}

// NewShipment is the request to create a shipment together with its
// container and the requesting customer.
type NewShipment struct {
	Customer    NewCustomer
	Container   NewContainer
	Origin      Location
	Destination Location
}

// ShipmentTracking is the caller-facing progress summary.
type ShipmentTracking struct {
	ShipmentID         uuid.UUID
	Number             string
	Status             ShipmentStatusType
	Container          Container
	CurrentLeg         *Leg
	EstimatedCost      *float64
	EstimatedTimeHours *float64
	FinalCost          *float64
	FinalTimeHours     *float64
	CreatedAt          time.Time
}
