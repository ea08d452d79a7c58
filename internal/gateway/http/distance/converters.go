package distance

import (
	"math"

	"logistics/internal/entities"
)

// directionsResponse is the OpenRouteService geojson directions
// payload, trimmed to the summary we read.
type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func toDomain(resp *directionsResponse) *entities.RouteEstimate {
	if resp == nil || len(resp.Features) == 0 {
		return nil
	}

	summary := resp.Features[0].Properties.Summary
	return &entities.RouteEstimate{
		DistanceKm:    round2(summary.Distance / 1000),
		DurationHours: round2(summary.Duration / 3600),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
