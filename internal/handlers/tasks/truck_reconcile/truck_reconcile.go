package truck_reconcile

import (
	"context"
	"time"

	"logistics/pkg/logger"
)

type Service interface {
	ReconcileTruckAvailability(ctx context.Context) (int64, error)
}

type TruckReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTruckReconcile(log logger.Logger, service Service, interval time.Duration) *TruckReconcile {
	return &TruckReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TruckReconcile) TTL() time.Duration {
	return t.interval
}

func (t *TruckReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	mismatched, err := t.service.ReconcileTruckAvailability(ctxWithTimeout)

	if mismatched > 0 {
		t.log.With(
			logger.NewField("mismatched_trucks", mismatched),
		).Info("truck availability reconcile")
	}

	return err
}

func (t *TruckReconcile) Info() string {
	return "truck availability reconcile"
}
