package entities

// Location is a free-text address together with its geographic
// coordinates. Coordinates are decimal degrees.
type Location struct {
	Address   string
	Latitude  float64
	Longitude float64
}
