package shipment_requested

type locationEvent struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type customerEvent struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type containerEvent struct {
	Identification string  `json:"identification"`
	WeightKg       float64 `json:"weightKg"`
	VolumeM3       float64 `json:"volumeM3"`
}

type requestedEvent struct {
	Customer    customerEvent  `json:"customer"`
	Container   containerEvent `json:"container"`
	Origin      locationEvent  `json:"origin"`
	Destination locationEvent  `json:"destination"`
}
