package ports

import (
	"context"
	"planet-travel-service/internal/domain"
)

// Port: a boundary for retrieving Planet records from a data source.
type PlanetRepository interface {
	// Retrieve all planets ordered by distance from the sun.
	ListPlanets(ctx context.Context) ([]*domain.Planet, error)
	// Retrieve one planet by its exact (already normalized) name.
	// Returns domain.ErrPlanetNotFound when no planet matches.
	GetPlanet(ctx context.Context, name string) (*domain.Planet, error)
}
