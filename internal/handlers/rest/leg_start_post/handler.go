package leg_start_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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

	started, err := h.service.Start(r.Context(), legID)
	if err != nil {
		switch {
		case errors.Is(err, leg.ErrLegNotFound),
			errors.Is(err, leg.ErrPreviousLegNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, leg.ErrLegNotAssigned),
			errors.Is(err, leg.ErrLegWithoutTruck),
			errors.Is(err, leg.ErrPreviousLegNotFinished):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.Leg(started))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
