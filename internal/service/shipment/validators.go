package shipment

import "strings"

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func isValidIdentification(identification string) bool {
	return strings.TrimSpace(identification) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
