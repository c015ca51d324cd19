package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"planet-travel-service/internal/domain"
	"planet-travel-service/internal/platform/obs"

	"go.uber.org/zap"
)

// SQL-backed implementation of the PlanetRepository port.
// The same queries serve Postgres (pgx) and SQLite; only bind parameters differ.
type SQLPlanetRepository struct {
	DB      *sql.DB
	Dialect Dialect
	Logger  *zap.Logger
}

func NewSQLPlanetRepository(db *sql.DB, dialect Dialect, logger *zap.Logger) *SQLPlanetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLPlanetRepository{DB: db, Dialect: dialect, Logger: logger}
}

const planetColumns = `
		name,
		description,
		image_url,
		distance_km,
		distance_au,
		diameter,
		day_length,
		year_length,
		gravity,
		moons`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlanet(row rowScanner) (*domain.Planet, error) {
	var p domain.Planet
	err := row.Scan(
		&p.Name,
		&p.Description,
		&p.ImageURL,
		&p.DistanceFromSun.KM,
		&p.DistanceFromSun.AU,
		&p.Diameter,
		&p.DayLength,
		&p.YearLength,
		&p.Gravity,
		&p.Moons,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Return all planets ordered by distance from the sun.
func (s *SQLPlanetRepository) ListPlanets(ctx context.Context) (_ []*domain.Planet, err error) {
	defer obs.Time(ctx, s.Logger, "planets.repo.ListPlanets")(&err)

	if s.DB == nil {
		return nil, errors.New("sql planet repository: DB is nil")
	}

	query := `SELECT` + planetColumns + `
	FROM planets
	ORDER BY distance_order, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list planets: query planets table: %w", err)
	}
	defer rows.Close()

	planets := make([]*domain.Planet, 0, 8)
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("list planets: scan row: %w", err)
		}
		planets = append(planets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list planets: row iteration: %w", err)
	}

	return planets, nil
}

// Return the planet with the given name, or domain.ErrPlanetNotFound.
func (s *SQLPlanetRepository) GetPlanet(ctx context.Context, name string) (_ *domain.Planet, err error) {
	defer obs.Time(ctx, s.Logger, "planets.repo.GetPlanet")(&err)

	if s.DB == nil {
		return nil, errors.New("sql planet repository: DB is nil")
	}

	query := `SELECT` + planetColumns + `
	FROM planets
	WHERE name = ` + s.Dialect.placeholder(1) + `;
	`
	p, err := scanPlanet(s.DB.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlanetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get planet %q: %w", name, err)
	}

	return p, nil
}
