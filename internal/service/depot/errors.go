package depot

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidStorageCost    = errors.New("invalid storage cost")

	ErrDepotNotFound = errors.New("depot not found")
)
