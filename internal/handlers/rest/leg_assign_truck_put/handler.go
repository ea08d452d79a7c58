package leg_assign_truck_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"logistics/internal/gateway/http/fleet"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/convert"
	"logistics/internal/service/leg"
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
	legID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignDTO dto.AssignTruckRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assigned, err := h.service.AssignTruck(r.Context(), legID, assignDTO.TruckID)
	if err != nil {
		switch {
		case errors.Is(err, leg.ErrLegNotFound),
			errors.Is(err, fleet.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, leg.ErrLegAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, leg.ErrTruckWeightExceeded),
			errors.Is(err, leg.ErrTruckVolumeExceeded):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Leg(assigned))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
