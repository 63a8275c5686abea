package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/operations"
)

func newChartCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := a.chart()
			if err != nil {
				return err
			}
			a.renderer(cmd).Chart(chart)
			return nil
		},
	}
}

func newPresetsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the canned operations and the entry each one suggests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := a.chart()
			if err != nil {
				return err
			}
			presets := operations.DefaultPresets()
			if err := operations.Validate(presets, chart); err != nil {
				return err
			}
			a.renderer(cmd).Presets(presets, chart)
			return nil
		},
	}
}
