package entities

import "github.com/google/uuid"

type Container struct {
	ID             uuid.UUID
	Identification string
	WeightKg       float64
	VolumeM3       float64
	Status         ContainerStatusType
	CurrentAddress string
	CustomerID     uuid.UUID
}

type ContainerStatusType string

const (
	ContainerAtOrigin  ContainerStatusType = "at_origin"
	ContainerPickedUp  ContainerStatusType = "picked_up"
	ContainerInTransit ContainerStatusType = "in_transit"
	ContainerInDepot   ContainerStatusType = "in_depot"
	ContainerDelivered ContainerStatusType = "delivered"
)

func (s ContainerStatusType) String() string {
	return string(s)
}

type ContainerModify struct {
	ID             *uuid.UUID
	Status         *ContainerStatusType
	CurrentAddress *string
}

type NewContainer struct {
	Identification string
	WeightKg       float64
	VolumeM3       float64
}
