package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"planet-travel-service/internal/domain"
	"planet-travel-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "planet:"

// RedisPlanetCache stores planet records as JSON under "planet:<name>".
// Names are expected to be normalized by the caller.
type RedisPlanetCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisPlanetCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisPlanetCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPlanetCache{Client: client, TTL: ttl, Logger: logger}
}

func planetKey(name string) string { return keyPrefix + name }

// Fetch a cached planet record. A miss is not an error.
func (c *RedisPlanetCache) Get(ctx context.Context, name string) (_ *domain.Planet, _ bool, err error) {
	defer obs.Time(ctx, c.Logger, "planet.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("planet cache: client is nil")
	}

	if strings.TrimSpace(name) == "" {
		return nil, false, errors.New("get planet cache: name must not be empty")
	}

	raw, err := c.Client.Get(ctx, planetKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get planet cache %q: %w", name, err)
	}

	var p domain.Planet
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, fmt.Errorf("get planet cache %q: decode: %w", name, err)
	}

	return &p, true, nil
}

// Store a planet record with the configured TTL (zero keeps it forever).
func (c *RedisPlanetCache) Put(ctx context.Context, planet *domain.Planet) error {
	if c.Client == nil {
		return errors.New("planet cache: client is nil")
	}

	if planet == nil || strings.TrimSpace(planet.Name) == "" {
		return errors.New("insert planet cache: planet name must not be empty")
	}

	raw, err := json.Marshal(planet)
	if err != nil {
		return fmt.Errorf("insert planet cache %q: encode: %w", planet.Name, err)
	}

	if err := c.Client.Set(ctx, planetKey(planet.Name), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert planet cache %q: %w", planet.Name, err)
	}

	return nil
}
