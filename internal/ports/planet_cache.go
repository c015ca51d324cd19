package ports

import (
	"context"
	"planet-travel-service/internal/domain"
)

// Contract for a key-value cache of planet records keyed by normalized name.
type PlanetCache interface {
	// Return the cached planet and true, or nil and false on a miss.
	Get(ctx context.Context, name string) (*domain.Planet, bool, error)
	Put(ctx context.Context, planet *domain.Planet) error
}
