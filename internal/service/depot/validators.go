package depot

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
