package entities

// TariffConfig is the current pricing configuration fetched from the
// tariff service. It is read fresh on every planning or costing call.
type TariffConfig struct {
	CostPerKm            float64
	FuelPricePerLiter    float64
	FuelConsumptionPerKm float64
	ManagementFeePerLeg  float64
	DailyStorageFee      float64
}

// CostQuery is an ad hoc cost preview request, independent of the
// route commit flow.
type CostQuery struct {
	DistanceKm  float64
	WeightKg    float64
	VolumeM3    float64
	LegCount    int
	StorageDays float64
}

type CostBreakdown struct {
	Total      float64
	Haul       float64
	Fuel       float64
	Storage    float64
	Management float64
}
