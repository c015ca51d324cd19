package main

import (
	"encoding/json"
	"errors"
	"planet-travel-service/internal/adapters/repositories"
	"planet-travel-service/internal/api/dto"
	"planet-travel-service/internal/services"

	"github.com/spf13/cobra"
)

var (
	travelOrigin      string
	travelDestination string
	travelSeedPath    string
)

// travelCmd runs the calculation against a seed file without a database.
var travelCmd = &cobra.Command{
	Use:   "travel",
	Short: "Print the travel-time report between two planets",
	Example: `  dbtool travel --origin earth --destination mars
  dbtool travel --origin Venus --destination Neptune --file data/seeds/planets.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if travelOrigin == "" || travelDestination == "" {
			return errors.New("both --origin and --destination are required")
		}

		planets, err := repositories.LoadSeedFile(travelSeedPath)
		if err != nil {
			return err
		}
		repo := repositories.NewMemoryPlanetRepository(planets)

		origin, destination, err := services.LookupTravelPair(cmd.Context(), repo, travelOrigin, travelDestination)
		if err != nil {
			return err
		}

		report, err := services.CalculateTravelTime(origin, destination)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewTravelResponse(report))
	},
}

func init() {
	travelCmd.Flags().StringVarP(&travelOrigin, "origin", "o", "", "Origin planet")
	travelCmd.Flags().StringVarP(&travelDestination, "destination", "d", "", "Destination planet")
	travelCmd.Flags().StringVar(&travelSeedPath, "file", "data/seeds/planets.json", "Planet seed file")
}
