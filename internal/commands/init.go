package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/gitops"
)

var errGitNotFound = errors.New("git not found on PATH (required by --git)")

// Paths written by init, relative to the project directory.
var (
	chartFile   = filepath.Join("accounts", "chart-of-accounts.csv")
	entriesFile = filepath.Join("journal", "entries.csv")
)

func newInitCommand() *cobra.Command {
	var chartName string
	var force bool
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerlab project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, chartName, force, useGit)
		},
	}

	cmd.Flags().StringVar(&chartName, "chart", accounts.DefaultChartName, "name of the built-in chart of accounts")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing project")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit the project")

	return cmd
}

func runInit(out io.Writer, dir, chartName string, force, useGit bool) error {
	if useGit && !gitops.Available() {
		return errGitNotFound
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	accts, err := accounts.DefaultChart(chartName)
	if err != nil {
		return err
	}
	chart, err := accounts.NewChart(accts)
	if err != nil {
		return fmt.Errorf("building chart of accounts: %w", err)
	}

	// Create directory structure.
	for _, d := range []string{"accounts", "journal"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write ledgerlab.yaml.
	cfg := config.Default()
	cfg.Chart.Name = chartName
	cfg.Chart.Path = chartFile
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	if err := chart.Save(filepath.Join(dir, chartFile)); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Write an empty journal with its header.
	if err := saveEntries(filepath.Join(dir, entriesFile), nil); err != nil {
		return err
	}

	if !useGit {
		fmt.Fprintf(out, "Initialized ledgerlab project at %s (%d accounts)\n", dir, chart.Len())
		return nil
	}

	// Initialize git and create initial commit.
	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}
	hash, err := gitops.CommitAll(dir, "init: ledgerlab project", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized ledgerlab project at %s (%d accounts, %s)\n", dir, chart.Len(), hash)
	return nil
}
