package entities

// RouteEstimate is what the distance provider returns for a pair of
// coordinates.
type RouteEstimate struct {
	DistanceKm    float64
	DurationHours float64
}
