package tariff

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"logistics/internal/entities"
	"logistics/internal/gateway/http/gatewaymetrics"
	"logistics/internal/gateway/http/httperr"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "tariff-service"

	configurationPath = "/api/tarifas/configuracion"
	computeCostPath   = "/api/tarifas/calcular-costo"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type TariffGateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *TariffGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     httperr.IsRetryable,
	}

	return &TariffGateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// GetConfiguration fetches the current pricing configuration. No local
// defaults here; the tariff service owns them.
func (g *TariffGateway) GetConfiguration(ctx context.Context) (*entities.TariffConfig, error) {
	var dto configurationDTO

	err := g.executeWithMetrics(ctx, "GetConfiguration", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, g.baseURL+configurationPath, nil, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway tariff, get configuration: %w", err)
	}

	return toDomainConfig(&dto), nil
}

// ComputeCost asks the tariff service to price a hypothetical haul.
func (g *TariffGateway) ComputeCost(ctx context.Context, query entities.CostQuery) (*entities.CostBreakdown, error) {
	request := fromDomainQuery(query)

	var dto computedCostDTO

	err := g.executeWithMetrics(ctx, "ComputeCost", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, g.baseURL+computeCostPath, request, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway tariff, compute cost: %w", err)
	}

	return toDomainBreakdown(&dto), nil
}

func (g *TariffGateway) doJSON(ctx context.Context, method, requestURL string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &httperr.StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *TariffGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
