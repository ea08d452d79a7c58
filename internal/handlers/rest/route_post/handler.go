package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/convert"
	"logistics/internal/service/route"
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
	var planDTO dto.RoutePlanRequest
	err := json.NewDecoder(r.Body).Decode(&planDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	committed, err := h.service.Commit(r.Context(), planDTO.ShipmentID, planDTO.DepotIDs)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, route.ErrDepotsNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, route.ErrRouteAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, route.ErrUnresolvedWaypoint):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.Route(committed))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
