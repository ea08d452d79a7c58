package depot_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/convert"
	"logistics/internal/service/depot"
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
	var createDTO dto.DepotCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	depotModify := entities.DepotModify{
		Name:             &createDTO.Name,
		Address:          &createDTO.Address,
		Latitude:         &createDTO.Latitude,
		Longitude:        &createDTO.Longitude,
		DailyStorageCost: &createDTO.DailyStorageCost,
	}

	created, err := h.service.Create(r.Context(), depotModify)
	if err != nil {
		switch {
		case errors.Is(err, depot.ErrMissingRequiredFields),
			errors.Is(err, depot.ErrInvalidName),
			errors.Is(err, depot.ErrInvalidAddress),
			errors.Is(err, depot.ErrInvalidCoordinates),
			errors.Is(err, depot.ErrInvalidStorageCost):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.Depot(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
