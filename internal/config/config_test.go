package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, dotenv, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, dotenv)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/app.db", cfg.Database.DSN())
	assert.Equal(t, "data/seeds/planets.json", cfg.Database.SeedPath)
	assert.True(t, cfg.Database.SeedOnStart)
	assert.Equal(t, "3000", cfg.Service.Port)
	assert.Equal(t, []string{"*"}, cfg.Service.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://planets@localhost/planets")
	t.Setenv("PLANET_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://planets.example")

	cfg, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://planets@localhost/planets", cfg.Database.DSN())
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"http://localhost:5173", "https://planets.example"}, cfg.Service.CORSAllowedOrigins)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8081\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, dotenv, err := Load(path)
	require.NoError(t, err)
	assert.True(t, dotenv)
	assert.Equal(t, "8081", cfg.Service.Port)
	assert.Equal(t, "debug", cfg.Service.LogLevel)
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "")

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
