package main

import (
	"encoding/json"

	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate reference categories and sample products",
	Long: `Seed inserts the reference categories and sample products with their
platform links. Rows that already exist (by category code or product SKU)
are skipped, so the command can be run any number of times.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(&appConfig.DB)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}

		report, err := storage.New(db).Seed(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}
