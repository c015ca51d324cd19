package handlers

import (
	"errors"
	"net/http"
	"planet-travel-service/internal/api/dto"
	"planet-travel-service/internal/platform/metrics"
	"planet-travel-service/internal/ports"
	"planet-travel-service/internal/services"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type TravelHandler struct {
	Repo   ports.PlanetRepository
	Logger *zap.Logger
}

// Travel resolves both planets and returns the travel-time report.
// Lookup and normalization happen here; the calculation itself is pure.
func (h *TravelHandler) Travel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin := q.Get("origin")
	destination := q.Get("destination")

	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "Both 'origin' and 'destination' query parameters are required")
		return
	}

	reqID := middleware.GetReqID(r.Context())

	originPlanet, destinationPlanet, err := services.LookupTravelPair(r.Context(), h.Repo, origin, destination)
	if err != nil {
		var nf *services.PlanetNotFoundError
		if errors.As(err, &nf) {
			writeError(w, r, http.StatusNotFound, nf.Error())
			return
		}

		h.Logger.Error("lookup travel planets failed", zap.String("req_id", reqID), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, internalServerError)
		return
	}

	report, err := services.CalculateTravelTime(originPlanet, destinationPlanet)
	if err != nil {
		metrics.IncreaseTravelCalculations("error")
		h.Logger.Error("calculate travel time failed",
			zap.String("req_id", reqID),
			zap.String("origin", originPlanet.Name),
			zap.String("destination", destinationPlanet.Name),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, internalServerError)
		return
	}
	metrics.IncreaseTravelCalculations("ok")

	writeJSON(w, r, http.StatusOK, dto.NewTravelResponse(report))
}
