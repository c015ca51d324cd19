package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"planet-travel-service/internal/api/dto"
	"planet-travel-service/internal/domain"
	"planet-travel-service/internal/ports"
	"planet-travel-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// PlanetHandler exposes read-only planet reference endpoints.
type PlanetHandler struct {
	Repo   ports.PlanetRepository
	Logger *zap.Logger
}

func (h *PlanetHandler) List(w http.ResponseWriter, r *http.Request) {
	planets, err := h.Repo.ListPlanets(r.Context())
	if err != nil {
		h.Logger.Error("list planets failed", zap.String("req_id", middleware.GetReqID(r.Context())), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, internalServerError)
		return
	}

	res := make([]dto.PlanetResponse, 0, len(planets))
	for _, p := range planets {
		res = append(res, dto.NewPlanetResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanetHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanetResponse(p))
}

func (h *PlanetHandler) Image(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if p.ImageURL == "" {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("No image available for planet '%s'", p.Name))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlanetImageResponse{Name: p.Name, ImageURL: p.ImageURL})
}

// lookup resolves the {name} URL parameter and writes the error response itself.
func (h *PlanetHandler) lookup(w http.ResponseWriter, r *http.Request) (*domain.Planet, bool) {
	name := services.NormalizePlanetName(chi.URLParam(r, "name"))

	p, err := h.Repo.GetPlanet(r.Context(), name)
	if errors.Is(err, domain.ErrPlanetNotFound) {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("Planet '%s' not found", name))
		return nil, false
	}
	if err != nil {
		h.Logger.Error("get planet failed",
			zap.String("req_id", middleware.GetReqID(r.Context())),
			zap.String("planet", name),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, internalServerError)
		return nil, false
	}

	return p, true
}
