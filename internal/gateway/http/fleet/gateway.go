package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/internal/gateway/http/gatewaymetrics"
	"logistics/internal/gateway/http/httperr"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "fleet-service"

	trucksPath = "/api/camiones"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrTruckNotFound = errors.New("truck not found")

type FleetGateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *FleetGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     httperr.IsRetryable,
	}

	return &FleetGateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *FleetGateway) GetTruck(ctx context.Context, id uuid.UUID) (*entities.Truck, error) {
	requestURL := g.baseURL + trucksPath + "/" + id.String()

	var dto truckDTO

	err := g.executeWithMetrics(ctx, "GetTruck", func(ctx context.Context) error {
		return g.getJSON(ctx, requestURL, &dto)
	})
	if err != nil {
		if httperr.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTruckNotFound, id)
		}
		return nil, fmt.Errorf("gateway fleet, get truck %s: %w", id, err)
	}

	return toDomain(&dto), nil
}

// SetAvailability toggles the truck's availability flag. Mutating and
// not idempotent from the fleet service's point of view, so it is
// never retried.
func (g *FleetGateway) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := url.Values{}
	query.Set("disponible", fmt.Sprintf("%t", available))

	requestURL := g.baseURL + trucksPath + "/" + id.String() + "/disponibilidad?" + query.Encode()

	start := time.Now()

	err := g.put(ctx, requestURL)

	statusCode := httperr.StatusLabel(err)
	gatewaymetrics.GatewayRequestDuration.WithLabelValues(serviceName, "SetAvailability", statusCode).Observe(time.Since(start).Seconds())

	if err != nil {
		if httperr.IsStatus(err, http.StatusNotFound) {
			return fmt.Errorf("%w: %s", ErrTruckNotFound, id)
		}
		return fmt.Errorf("gateway fleet, set availability %s: %w", id, err)
	}

	return nil
}

func (g *FleetGateway) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &httperr.StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *FleetGateway) put(ctx context.Context, requestURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, requestURL, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &httperr.StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return nil
}

func (g *FleetGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := httperr.StatusLabel(err)
	gatewaymetrics.GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gatewaymetrics.GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}
