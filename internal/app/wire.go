//go:build wireinject
// +build wireinject

package app

import (
	"context"

	customerGateway "logistics/internal/gateway/http/customer"
	distanceGateway "logistics/internal/gateway/http/distance"
	fleetGateway "logistics/internal/gateway/http/fleet"
	tariffGateway "logistics/internal/gateway/http/tariff"
	"logistics/internal/handlers/rest/cost_preview_post"
	"logistics/internal/handlers/tasks/truck_reconcile"
	"logistics/internal/pkg/config"

	depotRepo "logistics/internal/repository/depot"
	routeRepo "logistics/internal/repository/route"
	shipmentRepo "logistics/internal/repository/shipment"
	depotService "logistics/internal/service/depot"
	legService "logistics/internal/service/leg"
	routeService "logistics/internal/service/route"
	shipmentService "logistics/internal/service/shipment"

	"logistics/pkg/logger"
	"logistics/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideGatewayHTTPClient,
		provideReconcileInterval,

		provideShipmentRepository,
		provideRouteRepository,
		provideDepotRepository,

		provideFleetGateway,
		provideTariffGateway,
		provideCustomerGateway,
		provideDistanceGateway,

		provideServiceShipment,
		provideServiceRoute,
		provideServiceLeg,
		provideServiceDepot,

		provideTruckReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceLeg), new(*legService.Leg)),
		wire.Bind(new(ServiceDepot), new(*depotService.Depot)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(shipmentService.CustomerGateway), new(*customerGateway.CustomerGateway)),

		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(routeService.ShipmentRepository), new(*shipmentRepo.Repository)),
		wire.Bind(new(routeService.DepotRepository), new(*depotRepo.Repository)),
		wire.Bind(new(routeService.DistanceGateway), new(*distanceGateway.DistanceGateway)),
		wire.Bind(new(routeService.TariffGateway), new(*tariffGateway.TariffGateway)),

		wire.Bind(new(legService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(legService.ShipmentRepository), new(*shipmentRepo.Repository)),
		wire.Bind(new(legService.DepotRepository), new(*depotRepo.Repository)),
		wire.Bind(new(legService.FleetGateway), new(*fleetGateway.FleetGateway)),
		wire.Bind(new(legService.TariffGateway), new(*tariffGateway.TariffGateway)),

		wire.Bind(new(depotService.Repository), new(*depotRepo.Repository)),
		wire.Bind(new(depotService.RouteRepository), new(*routeRepo.Repository)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(legService.TxManager), new(*tx.Manager)),

		wire.Bind(new(cost_preview_post.Gateway), new(*tariffGateway.TariffGateway)),
		wire.Bind(new(truck_reconcile.Service), new(*legService.Leg)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the intake worker (cmd/worker-shipment-intake).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideGatewayHTTPClient,

		provideShipmentRepository,
		provideRouteRepository,

		provideCustomerGateway,

		provideServiceShipment,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(shipmentService.CustomerGateway), new(*customerGateway.CustomerGateway)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
