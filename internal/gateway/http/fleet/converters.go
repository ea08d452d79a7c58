package fleet

import (
	"github.com/google/uuid"
	"logistics/internal/entities"
)

// Wire names follow the fleet service's Spanish API contract.
type truckDTO struct {
	ID                    uuid.UUID `json:"id"`
	Dominio               string    `json:"dominio"`
	NombreTransportista   string    `json:"nombreTransportista"`
	TelefonoTransportista string    `json:"telefonoTransportista"`
	CapacidadPesoKg       float64   `json:"capacidadPesoKg"`
	CapacidadVolumenM3    float64   `json:"capacidadVolumenM3"`
	CostoBaseKm           float64   `json:"costoBaseKm"`
	ConsumoCombustibleLKm float64   `json:"consumoCombustibleLKm"`
	Disponible            bool      `json:"disponible"`
}

func toDomain(dto *truckDTO) *entities.Truck {
	if dto == nil {
		return nil
	}

	return &entities.Truck{
		ID:                   dto.ID,
		Plate:                dto.Dominio,
		CarrierName:          dto.NombreTransportista,
		CarrierPhone:         dto.TelefonoTransportista,
		MaxWeightKg:          dto.CapacidadPesoKg,
		MaxVolumeM3:          dto.CapacidadVolumenM3,
		CostPerKm:            dto.CostoBaseKm,
		FuelConsumptionPerKm: dto.ConsumoCombustibleLKm,
		Available:            dto.Disponible,
	}
}
