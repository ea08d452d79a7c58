package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/convert"
	"logistics/internal/service/shipment"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	newShipment := entities.NewShipment{
		Customer: entities.NewCustomer{
			Name:    createDTO.Customer.Name,
			Email:   createDTO.Customer.Email,
			Phone:   createDTO.Customer.Phone,
			Company: createDTO.Customer.Company,
		},
		Container: entities.NewContainer{
			Identification: createDTO.Container.Identification,
			WeightKg:       createDTO.Container.WeightKg,
			VolumeM3:       createDTO.Container.VolumeM3,
		},
		Origin: entities.Location{
			Address:   createDTO.Origin.Address,
			Latitude:  createDTO.Origin.Latitude,
			Longitude: createDTO.Origin.Longitude,
		},
		Destination: entities.Location{
			Address:   createDTO.Destination.Address,
			Latitude:  createDTO.Destination.Latitude,
			Longitude: createDTO.Destination.Longitude,
		},
	}

	created, err := h.service.Create(r.Context(), newShipment)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidLocation),
			errors.Is(err, shipment.ErrInvalidContainer),
			errors.Is(err, shipment.ErrInvalidCustomer),
			errors.Is(err, shipment.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrContainerConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.Shipment(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
