package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"logistics/internal/entities"
	"logistics/internal/gateway/http/gatewaymetrics"
	"logistics/internal/gateway/http/httperr"
	shipmentSvc "logistics/internal/service/shipment"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "customer-service"

	customersPath = "/api/clientes"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type CustomerGateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *CustomerGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     httperr.IsRetryable,
	}

	return &CustomerGateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *CustomerGateway) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	requestURL := g.baseURL + customersPath + "/email/" + url.PathEscape(email)

	var dto customerDTO

	err := g.executeWithMetrics(ctx, "GetByEmail", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, requestURL, nil, &dto)
	})
	if err != nil {
		if httperr.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %s", shipmentSvc.ErrCustomerNotFound, email)
		}
		return nil, fmt.Errorf("gateway customer, get by email: %w", err)
	}

	return toDomain(&dto), nil
}

// Create registers a customer. Mutating, so never retried.
func (g *CustomerGateway) Create(ctx context.Context, newCustomer entities.NewCustomer) (*entities.Customer, error) {
	request := fromDomainNew(newCustomer)

	var dto customerDTO

	start := time.Now()

	err := g.doJSON(ctx, http.MethodPost, g.baseURL+customersPath, request, &dto)

	statusCode := httperr.StatusLabel(err)
	gatewaymetrics.GatewayRequestDuration.WithLabelValues(serviceName, "Create", statusCode).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("gateway customer, create: %w", err)
	}

	return toDomain(&dto), nil
}

func (g *CustomerGateway) doJSON(ctx context.Context, method, requestURL string, in, out interface{}) error {
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

func (g *CustomerGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
