package shipment_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/entities"
	shipmentservice "logistics/internal/service/shipment"
	"logistics/pkg/logger"
)

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("shipment.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim has to stop because the session context was cancelled, and
// false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("container", event.Container.Identification),
		logger.NewField("customer_email", event.Customer.Email),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.requested processing")

	newShipment := entities.NewShipment{
		Customer: entities.NewCustomer{
			Name:    event.Customer.Name,
			Email:   event.Customer.Email,
			Phone:   event.Customer.Phone,
			Company: event.Customer.Company,
		},
		Container: entities.NewContainer{
			Identification: event.Container.Identification,
			WeightKg:       event.Container.WeightKg,
			VolumeM3:       event.Container.VolumeM3,
		},
		Origin: entities.Location{
			Address:   event.Origin.Address,
			Latitude:  event.Origin.Latitude,
			Longitude: event.Origin.Longitude,
		},
		Destination: entities.Location{
			Address:   event.Destination.Address,
			Latitude:  event.Destination.Latitude,
			Longitude: event.Destination.Longitude,
		},
	}

	shipment, err := h.shipmentService.Create(ctx, newShipment)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrContainerConflict):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.requested handler container already registered")

		case errors.Is(err, shipmentservice.ErrMissingRequiredFields),
			errors.Is(err, shipmentservice.ErrInvalidLocation),
			errors.Is(err, shipmentservice.ErrInvalidContainer),
			errors.Is(err, shipmentservice.ErrInvalidCustomer):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.requested handler invalid request")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.requested handler failed to create shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("shipment", shipment.ID),
		logger.NewField("number", shipment.Number),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("shipment.requested: processed")

	sess.MarkMessage(message, "")
	return false
}
