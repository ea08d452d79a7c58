package depot_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.DepotUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	depotModify := entities.DepotModify{
		ID:               &id,
		Name:             updateDTO.Name,
		Address:          updateDTO.Address,
		Latitude:         updateDTO.Latitude,
		Longitude:        updateDTO.Longitude,
		DailyStorageCost: updateDTO.DailyStorageCost,
		Active:           updateDTO.Active,
	}

	updated, err := h.service.Update(r.Context(), depotModify)
	if err != nil {
		switch {
		case errors.Is(err, depot.ErrMissingRequiredFields),
			errors.Is(err, depot.ErrInvalidName),
			errors.Is(err, depot.ErrInvalidAddress),
			errors.Is(err, depot.ErrInvalidCoordinates),
			errors.Is(err, depot.ErrInvalidStorageCost):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, depot.ErrDepotNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Depot(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
