package main

import (
	"planet-travel-service/internal/adapters/repositories"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the schema and load planets from a JSON seed file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, conn, dialect, logger, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		path := seedPath
		if path == "" {
			path = cfg.Database.SeedPath
		}

		if err := repositories.Migrate(cmd.Context(), conn, dialect, logger); err != nil {
			return err
		}

		logger.Info("seeding database", zap.String("path", path))
		if err := repositories.SeedFromJSON(cmd.Context(), conn, dialect, path); err != nil {
			return err
		}
		logger.Info("seeding complete")

		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "file", "", "Seed file (defaults to SEED_PATH)")
}
