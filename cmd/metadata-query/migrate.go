package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/config"
)

func newMigrateCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the inventory tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrate := *cfg
			migrate.Storage.Migrate = true

			a, err := newApp(cmd.Context(), &migrate)
			if err != nil {
				return err
			}
			defer a.Close()

			zap.S().Infow("database migrated", "driver", cfg.Storage.Driver)
			return nil
		},
	}
}
