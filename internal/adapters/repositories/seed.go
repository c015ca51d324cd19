package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"planet-travel-service/internal/domain"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Digits with optional comma thousands groups and an optional fraction.
var kmPattern = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)

type distanceSeed struct {
	KM string `json:"km" validate:"required,km"`
	AU string `json:"au"`
}

type PlanetSeed struct {
	Name            string       `json:"name" validate:"required"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"image_url" validate:"omitempty,url"`
	DistanceFromSun distanceSeed `json:"distance_from_sun" validate:"required"`
	Diameter        string       `json:"diameter"`
	DayLength       string       `json:"day_length"`
	YearLength      string       `json:"year_length"`
	Gravity         string       `json:"gravity"`
	Moons           int          `json:"moons" validate:"gte=0"`
}

func newSeedValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("km", func(fl validator.FieldLevel) bool {
		return kmPattern.MatchString(fl.Field().String())
	})
	return v
}

// LoadSeedFile reads and validates planet records from a JSON file.
func LoadSeedFile(jsonPath string) ([]domain.Planet, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load planet seeds: read %q: %w", jsonPath, err)
	}

	var data []PlanetSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load planet seeds: parse json: %w", err)
	}

	v := newSeedValidator()
	seen := make(map[string]struct{}, len(data))
	planets := make([]domain.Planet, 0, len(data))
	for i, item := range data {
		item.Name = strings.TrimSpace(item.Name)
		item.DistanceFromSun.KM = strings.TrimSpace(item.DistanceFromSun.KM)

		if err := v.Struct(item); err != nil {
			return nil, fmt.Errorf("load planet seeds: item at index %d: %w", i+1, err)
		}
		if _, ok := seen[item.Name]; ok {
			return nil, fmt.Errorf("load planet seeds: duplicate planet %q at index %d", item.Name, i+1)
		}
		seen[item.Name] = struct{}{}

		planets = append(planets, domain.Planet{
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			DistanceFromSun: domain.DistanceFromSun{
				KM: item.DistanceFromSun.KM,
				AU: item.DistanceFromSun.AU,
			},
			Diameter:   item.Diameter,
			DayLength:  item.DayLength,
			YearLength: item.YearLength,
			Gravity:    item.Gravity,
			Moons:      item.Moons,
		})
	}

	return planets, nil
}

// SeedPlanets upserts planet records in a single transaction.
func SeedPlanets(ctx context.Context, db *sql.DB, dialect Dialect, planets []domain.Planet) error {
	if db == nil {
		return errors.New("seed planets: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed planets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph := func(n int) string { return dialect.placeholder(n) }
	query := fmt.Sprintf(`
	INSERT INTO planets (
		name,
		description,
		image_url,
		distance_km,
		distance_au,
		distance_order,
		diameter,
		day_length,
		year_length,
		gravity,
		moons
	)
	VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
	ON CONFLICT (name) DO UPDATE
	SET description = EXCLUDED.description,
		image_url = EXCLUDED.image_url,
		distance_km = EXCLUDED.distance_km,
		distance_au = EXCLUDED.distance_au,
		distance_order = EXCLUDED.distance_order,
		diameter = EXCLUDED.diameter,
		day_length = EXCLUDED.day_length,
		year_length = EXCLUDED.year_length,
		gravity = EXCLUDED.gravity,
		moons = EXCLUDED.moons;
	`, ph(1), ph(2), ph(3), ph(4), ph(5), ph(6), ph(7), ph(8), ph(9), ph(10), ph(11))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed planets: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range planets {
		_, err := stmt.ExecContext(ctx,
			p.Name,
			p.Description,
			p.ImageURL,
			p.DistanceFromSun.KM,
			p.DistanceFromSun.AU,
			distanceOrder(p.DistanceFromSun.KM),
			p.Diameter,
			p.DayLength,
			p.YearLength,
			p.Gravity,
			p.Moons,
		)
		if err != nil {
			return fmt.Errorf("seed planets: insert %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed planets: commit tx: %w", err)
	}

	return nil
}

// SeedFromJSON populates the planets table from a JSON seed file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	planets, err := LoadSeedFile(jsonPath)
	if err != nil {
		return err
	}

	if err := SeedPlanets(ctx, db, dialect, planets); err != nil {
		return err
	}

	return nil
}
