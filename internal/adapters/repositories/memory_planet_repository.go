package repositories

import (
	"context"
	"planet-travel-service/internal/domain"
	"sort"
)

// MemoryPlanetRepository serves planets from an in-process map.
// It backs tests and offline tooling that work from seed files.
type MemoryPlanetRepository struct {
	planets map[string]domain.Planet
}

func NewMemoryPlanetRepository(planets []domain.Planet) *MemoryPlanetRepository {
	m := make(map[string]domain.Planet, len(planets))
	for _, p := range planets {
		m[p.Name] = p
	}
	return &MemoryPlanetRepository{planets: m}
}

func (m *MemoryPlanetRepository) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	out := make([]*domain.Planet, 0, len(m.planets))
	for _, p := range m.planets {
		p := p
		out = append(out, &p)
	}

	// Unparseable distances sort last; ordering is by name among equals.
	sort.Slice(out, func(i, j int) bool {
		di, dj := distanceOrder(out[i].DistanceFromSun.KM), distanceOrder(out[j].DistanceFromSun.KM)
		if di != dj {
			return di < dj
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (m *MemoryPlanetRepository) GetPlanet(ctx context.Context, name string) (*domain.Planet, error) {
	p, ok := m.planets[name]
	if !ok {
		return nil, domain.ErrPlanetNotFound
	}
	return &p, nil
}
