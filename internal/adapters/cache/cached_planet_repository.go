package cache

import (
	"context"
	"fmt"
	"planet-travel-service/internal/domain"
	"planet-travel-service/internal/platform/metrics"
	"planet-travel-service/internal/ports"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const sharedLookupTimeout = 10 * time.Second

// CachedPlanetRepository is a read-through decorator over a PlanetRepository.
//
// Single-planet lookups check the cache first; concurrent misses for the same
// name share one repository call. Cache failures are logged and fall back to
// the repository. Listing always goes to the repository.
type CachedPlanetRepository struct {
	next   ports.PlanetRepository
	cache  ports.PlanetCache
	logger *zap.Logger
	group  singleflight.Group
}

func NewCachedPlanetRepository(next ports.PlanetRepository, cache ports.PlanetCache, logger *zap.Logger) *CachedPlanetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedPlanetRepository{next: next, cache: cache, logger: logger}
}

func (r *CachedPlanetRepository) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	return r.next.ListPlanets(ctx)
}

func (r *CachedPlanetRepository) GetPlanet(ctx context.Context, name string) (*domain.Planet, error) {
	p, ok, err := r.cache.Get(ctx, name)
	switch {
	case err != nil:
		metrics.IncreasePlanetCache("error")
		r.logger.Warn("planet cache read failed", zap.String("planet", name), zap.Error(err))
	case ok:
		metrics.IncreasePlanetCache("hit")
		return p, nil
	default:
		metrics.IncreasePlanetCache("miss")
	}

	// The shared lookup outlives any single caller; each caller still stops
	// waiting when its own context ends.
	ch := r.group.DoChan(name, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()

		p, err := r.next.GetPlanet(lookupCtx, name)
		if err != nil {
			return nil, err
		}

		if err := r.cache.Put(lookupCtx, p); err != nil {
			r.logger.Warn("planet cache write failed", zap.String("planet", name), zap.Error(err))
		}
		return p, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("cached planet repository: %w", ctx.Err())
	}
	if res.Err != nil {
		return nil, fmt.Errorf("cached planet repository: %w", res.Err)
	}
	v := res.Val

	// Copy so callers sharing a singleflight result cannot alias each other.
	out := *v.(*domain.Planet)
	return &out, nil
}
