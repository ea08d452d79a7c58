package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"logistics/internal/entities"
	"logistics/internal/gateway/http/gatewaymetrics"
	"logistics/internal/gateway/http/httperr"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "openrouteservice"

	directionsPath = "/v2/directions/driving-hgv"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrNoRoute = errors.New("no route between coordinates")

type DistanceGateway struct {
	baseURL string
	apiKey  string
	client  httpDoer
	retrier retrier
}

func New(baseURL, apiKey string, client httpDoer) *DistanceGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     httperr.IsRetryable,
	}

	return &DistanceGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// Route queries driving distance and duration between two coordinate
// pairs. Coordinates are "lon,lat" strings, the provider's convention.
func (g *DistanceGateway) Route(ctx context.Context, originCoord, destCoord string) (*entities.RouteEstimate, error) {
	query := url.Values{}
	query.Set("api_key", g.apiKey)
	query.Set("start", originCoord)
	query.Set("end", destCoord)

	requestURL := g.baseURL + directionsPath + "?" + query.Encode()

	var resp directionsResponse

	err := g.executeWithMetrics(ctx, "Route", func(ctx context.Context) error {
		return g.getJSON(ctx, requestURL, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway distance, route %s -> %s: %w", originCoord, destCoord, err)
	}

	estimate := toDomain(&resp)
	if estimate == nil {
		return nil, fmt.Errorf("gateway distance, route %s -> %s: %w", originCoord, destCoord, ErrNoRoute)
	}

	return estimate, nil
}

func (g *DistanceGateway) getJSON(ctx context.Context, requestURL string, out interface{}) error {
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

func (g *DistanceGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
