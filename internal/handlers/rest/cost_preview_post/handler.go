package cost_preview_post

import (
	"encoding/json"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/convert"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	gateway Gateway
}

func New(log handlerLogger, gateway Gateway) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		gateway: gateway,
	}
}

// ServeHTTP forwards an ad hoc costing request to the tariff service.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var previewDTO dto.CostPreviewRequest
	err := json.NewDecoder(r.Body).Decode(&previewDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if previewDTO.DistanceKm <= 0 || previewDTO.LegCount <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	breakdown, err := h.gateway.ComputeCost(r.Context(), entities.CostQuery{
		DistanceKm:  previewDTO.DistanceKm,
		WeightKg:    previewDTO.WeightKg,
		VolumeM3:    previewDTO.VolumeM3,
		LegCount:    previewDTO.LegCount,
		StorageDays: previewDTO.StorageDays,
	})
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.CostBreakdown(breakdown))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
