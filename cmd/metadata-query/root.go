package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/config"
)

func newRootCmd() *cobra.Command {
	// Subcommands hold cfg and see the loaded values once PersistentPreRunE ran.
	cfg, err := config.NewConfigurationWithDefaults()
	if err != nil {
		panic(err)
	}

	root := &cobra.Command{
		Use:          "metadata-query",
		Short:        "Query the service, instance, endpoint and database inventory",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			if err := initLogger(loaded.LogFormat, loaded.LogLevel); err != nil {
				return err
			}
			*cfg = *loaded
			zap.S().Debugw("configuration loaded", "config", cfg.DebugMap())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}
	config.RegisterFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		newServeCmd(cfg),
		newMigrateCmd(cfg),
		newQueryCmd(cfg),
		newExportCmd(cfg),
	)
	return root
}
