package main

import (
	"context"
	"database/sql"
	"planet-travel-service/internal/adapters/repositories"
	"planet-travel-service/internal/config"
	"planet-travel-service/internal/platform/db"
	"planet-travel-service/internal/platform/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "dbtool",
	Short:        "Planet database maintenance and offline travel calculations",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(travelCmd)

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")
}

// openStore loads configuration and opens the configured database.
func openStore(ctx context.Context) (*config.Config, *sql.DB, repositories.Dialect, *zap.Logger, error) {
	cfg, _, err := config.Load(envFile)
	if err != nil {
		return nil, nil, "", nil, err
	}

	logger := log.InitLog(cfg.Service.LogLevel)

	dialect, err := repositories.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return nil, nil, "", nil, err
	}

	conn, err := db.Open(ctx, dialect.DriverName(), cfg.Database.DSN())
	if err != nil {
		return nil, nil, "", nil, err
	}

	return cfg, conn, dialect, logger, nil
}
