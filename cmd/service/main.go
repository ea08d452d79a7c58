package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "logistics/internal/app"
	"logistics/internal/handlers/rest/cost_preview_post"
	"logistics/internal/handlers/rest/depot_containers_get"
	"logistics/internal/handlers/rest/depot_get"
	"logistics/internal/handlers/rest/depot_post"
	"logistics/internal/handlers/rest/depot_put"
	"logistics/internal/handlers/rest/depots_get"
	"logistics/internal/handlers/rest/healthcheck_head"
	"logistics/internal/handlers/rest/leg_assign_truck_put"
	"logistics/internal/handlers/rest/leg_finish_post"
	"logistics/internal/handlers/rest/leg_start_post"
	"logistics/internal/handlers/rest/legs_by_truck_get"
	"logistics/internal/handlers/rest/ping_get"
	"logistics/internal/handlers/rest/route_by_shipment_get"
	"logistics/internal/handlers/rest/route_post"
	"logistics/internal/handlers/rest/route_tentative_post"
	"logistics/internal/handlers/rest/shipment_get"
	"logistics/internal/handlers/rest/shipment_post"
	"logistics/internal/handlers/rest/shipment_tracking_get"
	"logistics/internal/handlers/rest/shipments_by_customer_get"
	"logistics/internal/handlers/rest/shipments_pending_get"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	metrics_system "logistics/internal/pkg/metrics"
	"logistics/internal/pkg/middlewares/graceful_shutdown"
	"logistics/internal/pkg/middlewares/metrics"
	"logistics/internal/pkg/middlewares/rate_limiter"
	"logistics/internal/pkg/middlewares/timeout"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting logistics application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must not be cancelled on SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests
	// can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // stays nil while pprof is disabled, so this case is never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx is independent from ctx, which is already cancelled at
	// this point.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/shipments", shipment_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipments/pending", shipments_pending_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipments/customer/{customerId}", shipments_by_customer_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipments/{id}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipments/{id}/tracking", shipment_tracking_get.New(log, app.ServiceShipment)).Methods("GET")

	router.Handle("/routes/tentative", route_tentative_post.New(log, app.ServiceRoute)).Methods("POST")
	router.Handle("/routes", route_post.New(log, app.ServiceRoute)).Methods("POST")
	router.Handle("/routes/shipment/{shipmentId}", route_by_shipment_get.New(log, app.ServiceRoute)).Methods("GET")

	router.Handle("/legs/{id}/assign-truck", leg_assign_truck_put.New(log, app.ServiceLeg)).Methods("PUT")
	router.Handle("/legs/{id}/start", leg_start_post.New(log, app.ServiceLeg)).Methods("POST")
	router.Handle("/legs/{id}/finish", leg_finish_post.New(log, app.ServiceLeg)).Methods("POST")
	router.Handle("/legs/truck/{truckId}", legs_by_truck_get.New(log, app.ServiceLeg)).Methods("GET")

	router.Handle("/cost/preview", cost_preview_post.New(log, app.GatewayTariff)).Methods("POST")

	router.Handle("/depots", depot_post.New(log, app.ServiceDepot)).Methods("POST")
	router.Handle("/depots", depots_get.New(log, app.ServiceDepot)).Methods("GET")
	router.Handle("/depots/{id}", depot_get.New(log, app.ServiceDepot)).Methods("GET")
	router.Handle("/depots/{id}", depot_put.New(log, app.ServiceDepot)).Methods("PUT")
	router.Handle("/depots/{id}/containers", depot_containers_get.New(log, app.ServiceDepot)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
