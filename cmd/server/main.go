package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"planet-travel-service/internal/adapters/cache"
	"planet-travel-service/internal/adapters/repositories"
	"planet-travel-service/internal/api"
	"planet-travel-service/internal/config"
	"planet-travel-service/internal/platform/db"
	"planet-travel-service/internal/platform/log"
	"planet-travel-service/internal/ports"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis) behind ports and starts the HTTP server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, dotenv, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.InitLog(cfg.Service.LogLevel)
	defer func() { _ = logger.Sync() }()

	if !dotenv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	dialect, err := repositories.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return err
	}

	conn, err := db.Open(ctx, dialect.DriverName(), cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	// Migrate and seed reference data on startup for local runs.
	if err := initAndSeed(ctx, conn, dialect, cfg.Database, logger); err != nil {
		return err
	}

	var repo ports.PlanetRepository = repositories.NewSQLPlanetRepository(conn, dialect, logger.Named("repo"))

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		// An unreachable cache is not fatal; lookups fall back to the database.
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, planet cache will fall back to database",
				zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}

		planetCache := cache.NewRedisPlanetCache(rdb, cfg.Redis.TTL, logger.Named("cache"))
		repo = cache.NewCachedPlanetRepository(repo, planetCache, logger.Named("cache"))
		logger.Info("planet cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}

	router := api.NewRouter(repo, logger, cfg.Service.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Service.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down the http server", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("db_driver", string(dialect)))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, cfg config.DBConfig, logger *zap.Logger) error {
	if err := repositories.Migrate(ctx, conn, dialect, logger); err != nil {
		return err
	}

	if !cfg.SeedOnStart {
		return nil
	}

	if err := repositories.SeedFromJSON(ctx, conn, dialect, cfg.SeedPath); err != nil {
		return err
	}
	logger.Info("planets seeded", zap.String("path", cfg.SeedPath))

	return nil
}
