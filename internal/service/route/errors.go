package route

import "errors"

var (
	ErrRouteNotFound        = errors.New("route not found")
	ErrDepotsNotFound       = errors.New("some depots were not found")
	ErrRouteAlreadyAssigned = errors.New("shipment already has a route assigned")
	ErrUnresolvedWaypoint   = errors.New("leg endpoint does not resolve to a known location")
)
