package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"planet-travel-service/internal/domain"
	"planet-travel-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedPath = "../../../data/seeds/planets.json"

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), DialectSQLite.DriverName(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, Migrate(context.Background(), conn, DialectSQLite, nil))
	return conn
}

func TestMigrateIsIdempotent(t *testing.T) {
	conn := newTestDB(t)
	require.NoError(t, Migrate(context.Background(), conn, DialectSQLite, nil))
}

func TestSQLPlanetRepositoryListAndGet(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	require.NoError(t, SeedFromJSON(ctx, conn, DialectSQLite, seedPath))

	repo := NewSQLPlanetRepository(conn, DialectSQLite, nil)

	planets, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 8)

	names := make([]string, 0, len(planets))
	for _, p := range planets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}, names)

	earth, err := repo.GetPlanet(ctx, "Earth")
	require.NoError(t, err)
	assert.Equal(t, "149,598,262", earth.DistanceFromSun.KM)
	assert.Equal(t, "1", earth.DistanceFromSun.AU)
	assert.Equal(t, 1, earth.Moons)
	assert.NotEmpty(t, earth.ImageURL)

	_, err = repo.GetPlanet(ctx, "Pluto")
	assert.True(t, errors.Is(err, domain.ErrPlanetNotFound))

	// Lookups are exact; normalization is the caller's job.
	_, err = repo.GetPlanet(ctx, "earth")
	assert.True(t, errors.Is(err, domain.ErrPlanetNotFound))
}

func TestSeedPlanetsUpserts(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)

	p := domain.Planet{Name: "Mars", DistanceFromSun: domain.DistanceFromSun{KM: "227,939,366", AU: "1.52"}, Moons: 2}
	require.NoError(t, SeedPlanets(ctx, conn, DialectSQLite, []domain.Planet{p}))

	p.Moons = 3
	p.Description = "updated"
	require.NoError(t, SeedPlanets(ctx, conn, DialectSQLite, []domain.Planet{p}))

	got, err := NewSQLPlanetRepository(conn, DialectSQLite, nil).GetPlanet(ctx, "Mars")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Moons)
	assert.Equal(t, "updated", got.Description)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM planets`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSQLPlanetRepositoryNilDB(t *testing.T) {
	repo := NewSQLPlanetRepository(nil, DialectSQLite, nil)
	_, err := repo.ListPlanets(context.Background())
	require.Error(t, err)
	_, err = repo.GetPlanet(context.Background(), "Earth")
	require.Error(t, err)
}

func TestLoadSeedFileValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed km", body: `[{"name":"Mars","distance_from_sun":{"km":"abc","au":"1.52"}}]`},
		{name: "bad grouping", body: `[{"name":"Mars","distance_from_sun":{"km":"22,7939,366","au":"1.52"}}]`},
		{name: "missing name", body: `[{"name":" ","distance_from_sun":{"km":"1","au":"1"}}]`},
		{name: "negative moons", body: `[{"name":"Mars","moons":-1,"distance_from_sun":{"km":"1","au":"1"}}]`},
		{name: "bad image url", body: `[{"name":"Mars","image_url":"not a url","distance_from_sun":{"km":"1","au":"1"}}]`},
		{name: "duplicate", body: `[{"name":"Mars","distance_from_sun":{"km":"1"}},{"name":"Mars","distance_from_sun":{"km":"2"}}]`},
		{name: "not json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "planets.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			_, err := LoadSeedFile(path)
			require.Error(t, err)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	planets, err := LoadSeedFile(seedPath)
	require.NoError(t, err)
	require.Len(t, planets, 8)
	assert.Equal(t, "Mercury", planets[0].Name)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestMemoryPlanetRepository(t *testing.T) {
	planets, err := LoadSeedFile(seedPath)
	require.NoError(t, err)

	// Reverse input order to prove listing sorts by distance.
	for i, j := 0, len(planets)-1; i < j; i, j = i+1, j-1 {
		planets[i], planets[j] = planets[j], planets[i]
	}

	repo := NewMemoryPlanetRepository(planets)
	ctx := context.Background()

	list, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
	assert.Equal(t, "Mercury", list[0].Name)
	assert.Equal(t, "Neptune", list[7].Name)

	mars, err := repo.GetPlanet(ctx, "Mars")
	require.NoError(t, err)
	assert.Equal(t, "227,939,366", mars.DistanceFromSun.KM)

	_, err = repo.GetPlanet(ctx, "Pluto")
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"pgx":      DialectPostgres,
		"postgres": DialectPostgres,
		"sqlite":   DialectSQLite,
		"SQLite3":  DialectSQLite,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDialect("mysql")
	require.Error(t, err)

	assert.Equal(t, "$2", DialectPostgres.placeholder(2))
	assert.Equal(t, "?", DialectSQLite.placeholder(2))
}
