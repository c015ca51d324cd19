package services

import (
	"context"
	"errors"
	"fmt"
	"planet-travel-service/internal/domain"
	"planet-travel-service/internal/ports"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// PlanetNotFoundError reports which side of a travel request could not be resolved.
type PlanetNotFoundError struct {
	Role string
	Name string
}

func (e *PlanetNotFoundError) Error() string {
	return fmt.Sprintf("%s planet '%s' not found", e.Role, e.Name)
}

func (e *PlanetNotFoundError) Unwrap() error { return domain.ErrPlanetNotFound }

// NormalizePlanetName upper-cases the first letter and lower-cases the rest,
// matching how planet names are stored ("mARS" -> "Mars").
func NormalizePlanetName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}

// LookupTravelPair resolves origin and destination planets concurrently.
// Names are normalized before lookup; a blank name is never found.
func LookupTravelPair(
	ctx context.Context,
	repo ports.PlanetRepository,
	origin string,
	destination string,
) (*domain.Planet, *domain.Planet, error) {
	if repo == nil {
		return nil, nil, errors.New("lookup travel pair: repository must be non-nil")
	}

	var (
		originPlanet, destinationPlanet *domain.Planet
		originErr, destinationErr       error
	)

	// Errors are collected per side so the origin is always reported first.
	var g errgroup.Group
	g.Go(func() error {
		originPlanet, originErr = getPlanet(ctx, repo, "Origin", origin)
		return nil
	})
	g.Go(func() error {
		destinationPlanet, destinationErr = getPlanet(ctx, repo, "Destination", destination)
		return nil
	})
	_ = g.Wait()

	if originErr != nil {
		return nil, nil, fmt.Errorf("lookup travel pair: %w", originErr)
	}
	if destinationErr != nil {
		return nil, nil, fmt.Errorf("lookup travel pair: %w", destinationErr)
	}

	return originPlanet, destinationPlanet, nil
}

func getPlanet(ctx context.Context, repo ports.PlanetRepository, role, raw string) (*domain.Planet, error) {
	name := NormalizePlanetName(raw)
	if name == "" {
		// Blank names are reported as given.
		return nil, &PlanetNotFoundError{Role: role, Name: raw}
	}

	p, err := repo.GetPlanet(ctx, name)
	if errors.Is(err, domain.ErrPlanetNotFound) {
		return nil, &PlanetNotFoundError{Role: role, Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("get %s planet %q: %w", strings.ToLower(role), name, err)
	}

	return p, nil
}
