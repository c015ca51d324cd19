package main

import (
	"planet-travel-service/internal/adapters/repositories"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, dialect, logger, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		logger.Info("migrating database", zap.String("driver", string(dialect)))
		if err := repositories.Migrate(cmd.Context(), conn, dialect, logger); err != nil {
			return err
		}
		logger.Info("database migrated")

		return nil
	},
}
