package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/render"
	"github.com/cleared-dev/ledgerlab/internal/reports"
	"github.com/cleared-dev/ledgerlab/internal/session"
)

// Report kinds accepted by the report command and the shell.
const (
	reportLedger          = "ledger"
	reportTrialBalance    = "trial-balance"
	reportBalanceSheet    = "balance-sheet"
	reportIncomeStatement = "income-statement"
	reportCashFlow        = "cash-flow"
	reportAll             = "all"
)

var reportKinds = []string{reportLedger, reportTrialBalance, reportBalanceSheet, reportIncomeStatement, reportCashFlow, reportAll}

func newReportCommand(a *app) *cobra.Command {
	var entriesPath string

	cmd := &cobra.Command{
		Use:       "report [kind]",
		Short:     "Print reports for a journal CSV file",
		Long:      "Print reports for a journal CSV file. Kind is one of: " + strings.Join(reportKinds, ", ") + ".",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: reportKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := reportAll
			if len(args) > 0 {
				kind = args[0]
			}
			sess, err := a.newSession()
			if err != nil {
				return err
			}
			if err := loadEntries(sess, entriesPath); err != nil {
				return err
			}
			a.log.Info().Int("entries", sess.Len()).Str("file", entriesPath).Msg("journal loaded")
			return printReport(a.renderer(cmd), sess, kind)
		},
	}

	cmd.Flags().StringVar(&entriesPath, "entries", entriesFile, "journal CSV file")

	return cmd
}

// loadEntries posts every entry of a journal CSV file into sess. IDs in the
// file are ignored; the ledger assigns fresh ones.
func loadEntries(sess *session.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	entries, err := journal.ReadEntries(f)
	if err != nil {
		return fmt.Errorf("reading journal %s: %w", path, err)
	}
	for i, e := range entries {
		if _, err := sess.Add(e); err != nil {
			return fmt.Errorf("%s entry %d: %w", path, i+1, err)
		}
	}
	return nil
}

// saveEntries writes entries to a journal CSV file.
func saveEntries(path string, entries []model.JournalEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal: %w", err)
	}
	if err := journal.WriteEntries(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("writing journal %s: %w", path, err)
	}
	return f.Close()
}

// printReport renders one report kind, or all of them.
func printReport(r *render.Renderer, sess *session.Session, kind string) error {
	switch kind {
	case reportLedger:
		var err error
		if sess.Len() == 0 {
			err = reports.ErrNoData
		}
		return r.Section("Journal", err, func() { r.Ledger(sess.Entries(), sess.Chart()) })
	case reportTrialBalance:
		tb, err := sess.TrialBalance()
		return r.Section("Trial balance", err, func() { r.TrialBalance(tb) })
	case reportBalanceSheet:
		bs, err := sess.BalanceSheet()
		return r.Section("Balance sheet", err, func() { r.BalanceSheet(bs) })
	case reportIncomeStatement:
		is, err := sess.IncomeStatement()
		return r.Section("Income statement", err, func() { r.IncomeStatement(is) })
	case reportCashFlow:
		cf, err := sess.CashFlow()
		return r.Section("Cash flow", err, func() { r.CashFlow(cf) })
	case reportAll:
		for _, k := range reportKinds[:len(reportKinds)-1] {
			if err := printReport(r, sess, k); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown report %q (want one of: %s)", kind, strings.Join(reportKinds, ", "))
	}
}
