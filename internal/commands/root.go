package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/buildinfo"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/logger"
	"github.com/cleared-dev/ledgerlab/internal/render"
	"github.com/cleared-dev/ledgerlab/internal/session"
)

// app carries the state every subcommand shares, filled in before any
// subcommand runs.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledgerlab",
		Short:   "Double-entry bookkeeping lab",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newChartCommand(a))
	rootCmd.AddCommand(newPresetsCommand(a))
	rootCmd.AddCommand(newReportCommand(a))
	rootCmd.AddCommand(newShellCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newQuizCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Out:    cmd.ErrOrStderr(),
	})
	a.log.Debug().Str("config", a.configPath).Str("chart", cfg.Chart.Name).Msg("configuration loaded")
	return nil
}

func (a *app) chart() (*accounts.Chart, error) {
	chart, err := a.cfg.LoadChart()
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}
	return chart, nil
}

func (a *app) newSession() (*session.Session, error) {
	chart, err := a.chart()
	if err != nil {
		return nil, err
	}
	return session.New(chart, a.cfg.CashFlow.Projection(), a.log)
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.cfg.Display.Currency)
}
