package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database DBConfig
	Redis    RedisConfig
	Service  ServiceConfig
}

type DBConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path        string `envconfig:"DB_PATH" default:"data/app.db"`
	URL         string `envconfig:"DATABASE_URL" default:""`
	SeedPath    string `envconfig:"SEED_PATH" default:"data/seeds/planets.json"`
	SeedOnStart bool   `envconfig:"SEED_ON_START" default:"true"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"PLANET_CACHE_TTL" default:"10m"`
}

type ServiceConfig struct {
	Port               string   `envconfig:"PORT" default:"3000"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"info"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// DSN returns the data source name for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == "sqlite" || c.Driver == "sqlite3" {
		return c.Path
	}
	return c.URL
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment take precedence over .env.
func Load(envFiles ...string) (*Config, bool, error) {
	dotenv := godotenv.Load(envFiles...) == nil

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, dotenv, fmt.Errorf("load config: %w", err)
	}

	if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "sqlite3" && cfg.Database.URL == "" {
		return nil, dotenv, fmt.Errorf("load config: DATABASE_URL is required for driver %q", cfg.Database.Driver)
	}

	return cfg, dotenv, nil
}
