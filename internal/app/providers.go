package app

import (
	"context"
	"net/http"
	"time"

	customerGateway "logistics/internal/gateway/http/customer"
	distanceGateway "logistics/internal/gateway/http/distance"
	fleetGateway "logistics/internal/gateway/http/fleet"
	tariffGateway "logistics/internal/gateway/http/tariff"
	"logistics/internal/handlers/tasks/truck_reconcile"
	"logistics/internal/pkg/config"

	depotRepo "logistics/internal/repository/depot"
	routeRepo "logistics/internal/repository/route"
	shipmentRepo "logistics/internal/repository/shipment"
	depotService "logistics/internal/service/depot"
	legService "logistics/internal/service/leg"
	routeService "logistics/internal/service/route"
	shipmentService "logistics/internal/service/shipment"

	"logistics/pkg/background"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideGatewayHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Gateways.HTTPTimeout}
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideDepotRepository(querier *querier.Querier) *depotRepo.Repository {
	return depotRepo.New(querier)
}

func provideFleetGateway(cfg *config.Config, client *http.Client) *fleetGateway.FleetGateway {
	return fleetGateway.New(cfg.Gateways.FleetURL, client)
}

func provideTariffGateway(cfg *config.Config, client *http.Client) *tariffGateway.TariffGateway {
	return tariffGateway.New(cfg.Gateways.TariffURL, client)
}

func provideCustomerGateway(cfg *config.Config, client *http.Client) *customerGateway.CustomerGateway {
	return customerGateway.New(cfg.Gateways.CustomerURL, client)
}

func provideDistanceGateway(cfg *config.Config, client *http.Client) *distanceGateway.DistanceGateway {
	return distanceGateway.New(cfg.Gateways.ORSBaseURL, cfg.Gateways.ORSAPIKey, client)
}

func provideServiceShipment(
	log logger.Logger,
	repository shipmentService.Repository,
	routeRepository shipmentService.RouteRepository,
	customers shipmentService.CustomerGateway,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, routeRepository, customers, txManager, log)
}

func provideServiceRoute(
	log logger.Logger,
	repository routeService.Repository,
	shipmentRepository routeService.ShipmentRepository,
	depotRepository routeService.DepotRepository,
	distance routeService.DistanceGateway,
	tariff routeService.TariffGateway,
	txManager routeService.TxManager,
) *routeService.Route {
	return routeService.New(repository, shipmentRepository, depotRepository, distance, tariff, txManager, log)
}

func provideServiceLeg(
	log logger.Logger,
	repository legService.Repository,
	shipmentRepository legService.ShipmentRepository,
	depotRepository legService.DepotRepository,
	fleet legService.FleetGateway,
	tariff legService.TariffGateway,
	txManager legService.TxManager,
) *legService.Leg {
	return legService.New(repository, shipmentRepository, depotRepository, fleet, tariff, txManager, log)
}

func provideServiceDepot(
	repository depotService.Repository,
	routeRepository depotService.RouteRepository,
) *depotService.Depot {
	return depotService.New(repository, routeRepository)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.TruckReconcileInterval)
}

func provideTruckReconcileTask(
	log logger.Logger,
	legService truck_reconcile.Service,
	interval ReconcileInterval,
) *truck_reconcile.TruckReconcile {
	return truck_reconcile.NewTruckReconcile(log, legService, time.Duration(interval))
}

func provideTaskList(
	truckReconcileTask *truck_reconcile.TruckReconcile,
) []background.Task {
	return []background.Task{
		truckReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
