package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/apmstack/metadata-query/internal/config"
	"github.com/apmstack/metadata-query/internal/export"
)

func newExportCmd(cfg *config.Configuration) *cobra.Command {
	var (
		window windowFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the inventory alive in the window to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return export.NewExporter(a.metadata).SaveAs(cmd.Context(), window.timeRange(time.Now()), output)
		},
	}
	window.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "inventory.xlsx", "Workbook path")
	return cmd
}
