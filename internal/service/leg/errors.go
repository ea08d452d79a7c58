package leg

import "errors"

var (
	ErrLegNotFound = errors.New("leg not found")

	ErrLegAlreadyAssigned     = errors.New("leg already has a truck assigned or is in progress")
	ErrLegNotAssigned         = errors.New("leg must be assigned before it can start")
	ErrLegNotStarted          = errors.New("leg must be started before it can finish")
	ErrLegWithoutTruck        = errors.New("leg has no truck assigned")
	ErrPreviousLegNotFound    = errors.New("previous leg not found")
	ErrPreviousLegNotFinished = errors.New("previous leg must be finished")

	ErrTruckWeightExceeded = errors.New("truck weight capacity exceeded")
	ErrTruckVolumeExceeded = errors.New("truck volume capacity exceeded")
)
