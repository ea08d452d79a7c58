package entities

import "github.com/google/uuid"

// Truck lives in the fleet service; legs reference it by id only.
type Truck struct {
	ID                   uuid.UUID
	Plate                string
	CarrierName          string
	CarrierPhone         string
	MaxWeightKg          float64
	MaxVolumeM3          float64
	CostPerKm            float64
	FuelConsumptionPerKm float64
	Available            bool
}
