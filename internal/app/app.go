package app

import (
	"time"

	"logistics/internal/handlers/rest/cost_preview_post"
	"logistics/internal/handlers/rest/depot_containers_get"
	"logistics/internal/handlers/rest/depot_get"
	"logistics/internal/handlers/rest/depot_post"
	"logistics/internal/handlers/rest/depot_put"
	"logistics/internal/handlers/rest/depots_get"
	"logistics/internal/handlers/rest/leg_assign_truck_put"
	"logistics/internal/handlers/rest/leg_finish_post"
	"logistics/internal/handlers/rest/leg_start_post"
	"logistics/internal/handlers/rest/legs_by_truck_get"
	"logistics/internal/handlers/rest/route_by_shipment_get"
	"logistics/internal/handlers/rest/route_post"
	"logistics/internal/handlers/rest/route_tentative_post"
	"logistics/internal/handlers/rest/shipment_get"
	"logistics/internal/handlers/rest/shipment_post"
	"logistics/internal/handlers/rest/shipment_tracking_get"
	"logistics/internal/handlers/rest/shipments_by_customer_get"
	"logistics/internal/handlers/rest/shipments_pending_get"

	shipmentService "logistics/internal/service/shipment"
	"logistics/pkg/background"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceRoute      ServiceRoute
	ServiceLeg        ServiceLeg
	ServiceDepot      ServiceDepot
	GatewayTariff     cost_preview_post.Gateway
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_tracking_get.Service
	shipments_pending_get.Service
	shipments_by_customer_get.Service
}

type ServiceRoute interface {
	route_tentative_post.Service
	route_post.Service
	route_by_shipment_get.Service
}

type ServiceLeg interface {
	leg_assign_truck_put.Service
	leg_start_post.Service
	leg_finish_post.Service
	legs_by_truck_get.Service
}

type ServiceDepot interface {
	depot_post.Service
	depot_get.Service
	depots_get.Service
	depot_put.Service
	depot_containers_get.Service
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}
