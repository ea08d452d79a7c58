package tariff

import (
	"logistics/internal/entities"
)

// Wire names follow the tariff service's Spanish API contract.
type configurationDTO struct {
	CostoBaseKm           float64 `json:"costoBaseKm"`
	ValorLitroCombustible float64 `json:"valorLitroCombustible"`
	ConsumoPromedioLKm    float64 `json:"consumoPromedioLKm"`
	CostoGestionPorTramo  float64 `json:"costoGestionPorTramo"`
	CostoEstadiaDiario    float64 `json:"costoEstadiaDiario"`
}

type computeCostRequestDTO struct {
	DistanciaKm    float64 `json:"distanciaKm"`
	PesoKg         float64 `json:"pesoKg"`
	VolumenM3      float64 `json:"volumenM3"`
	CantidadTramos int     `json:"cantidadTramos"`
	DiasEstadia    float64 `json:"diasEstadia"`
}

type computedCostDTO struct {
	CostoTotal       float64 `json:"costoTotal"`
	CostoTraslado    float64 `json:"costoTraslado"`
	CostoCombustible float64 `json:"costoCombustible"`
	CostoEstadia     float64 `json:"costoEstadia"`
	CostoGestion     float64 `json:"costoGestion"`
}

func toDomainConfig(dto *configurationDTO) *entities.TariffConfig {
	if dto == nil {
		return nil
	}

	return &entities.TariffConfig{
		CostPerKm:            dto.CostoBaseKm,
		FuelPricePerLiter:    dto.ValorLitroCombustible,
		FuelConsumptionPerKm: dto.ConsumoPromedioLKm,
		ManagementFeePerLeg:  dto.CostoGestionPorTramo,
		DailyStorageFee:      dto.CostoEstadiaDiario,
	}
}

func fromDomainQuery(query entities.CostQuery) computeCostRequestDTO {
	return computeCostRequestDTO{
		DistanciaKm:    query.DistanceKm,
		PesoKg:         query.WeightKg,
		VolumenM3:      query.VolumeM3,
		CantidadTramos: query.LegCount,
		DiasEstadia:    query.StorageDays,
	}
}

func toDomainBreakdown(dto *computedCostDTO) *entities.CostBreakdown {
	if dto == nil {
		return nil
	}

	return &entities.CostBreakdown{
		Total:      dto.CostoTotal,
		Haul:       dto.CostoTraslado,
		Fuel:       dto.CostoCombustible,
		Storage:    dto.CostoEstadia,
		Management: dto.CostoGestion,
	}
}
