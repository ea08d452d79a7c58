package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidContainer      = errors.New("invalid container")
	ErrInvalidCustomer       = errors.New("invalid customer")

	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrContainerConflict = errors.New("container identification already in use")
)
