package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/render"
	"github.com/cleared-dev/ledgerlab/internal/session"
)

const shellHelp = `Commands:
  add <date> <debit> <credit> <amount> [memo]   post an entry (accounts by code or name)
  preset <key> <date> <amount> [memo]           post a canned operation
  check <side:account:amount>...                check a multi-line entry
  ledger | trial | balance | income | cashflow | reports
  chart | presets
  load <file> | save <file>                     read or write a journal CSV
  clear                                         empty the ledger
  help | quit`

func newShellCommand(a *app) *cobra.Command {
	var entriesPath string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Post entries and watch the reports change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newSession()
			if err != nil {
				return err
			}
			if entriesPath != "" {
				if err := loadEntries(sess, entriesPath); err != nil {
					return err
				}
			}
			sh := &shell{
				sess: sess,
				r:    a.renderer(cmd),
				out:  cmd.OutOrStdout(),
				log:  a.log,
			}
			return sh.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&entriesPath, "entries", "", "journal CSV file to start from")

	return cmd
}

type shell struct {
	sess *session.Session
	r    *render.Renderer
	out  io.Writer
	log  zerolog.Logger
}

func (sh *shell) run(in io.Reader) error {
	fmt.Fprintln(sh.out, `ledgerlab shell. Type "help" for commands.`)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "ledgerlab> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		quit, err := sh.exec(scanner.Text())
		if err != nil {
			sh.printError(err)
		}
		if quit {
			return nil
		}
	}
}

func (sh *shell) printError(err error) {
	if vs := journal.Violations(err); len(vs) > 0 {
		fmt.Fprintln(sh.out, "entry rejected:")
		for _, v := range vs {
			fmt.Fprintf(sh.out, "  - %s\n", v.Description)
		}
		return
	}
	fmt.Fprintf(sh.out, "error: %v\n", err)
}

// exec runs one command line. quit is true when the shell should stop.
func (sh *shell) exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "add":
		return false, sh.add(args)
	case "preset":
		return false, sh.preset(args)
	case "check":
		res, err := checkArgs(args)
		if err != nil {
			return false, err
		}
		sh.r.BalanceCheck(res)
	case "ledger":
		return false, printReport(sh.r, sh.sess, reportLedger)
	case "trial":
		return false, printReport(sh.r, sh.sess, reportTrialBalance)
	case "balance":
		return false, printReport(sh.r, sh.sess, reportBalanceSheet)
	case "income":
		return false, printReport(sh.r, sh.sess, reportIncomeStatement)
	case "cashflow":
		return false, printReport(sh.r, sh.sess, reportCashFlow)
	case "reports":
		return false, printReport(sh.r, sh.sess, reportAll)
	case "chart":
		sh.r.Chart(sh.sess.Chart())
	case "presets":
		sh.r.Presets(sh.sess.Presets(), sh.sess.Chart())
	case "clear":
		sh.sess.Clear()
		fmt.Fprintln(sh.out, "Ledger cleared.")
	case "load":
		if len(args) != 1 {
			return false, errors.New("usage: load <file>")
		}
		before := sh.sess.Len()
		if err := loadEntries(sh.sess, args[0]); err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "Loaded %d entries.\n", sh.sess.Len()-before)
	case "save":
		if len(args) != 1 {
			return false, errors.New("usage: save <file>")
		}
		return false, sh.save(args[0])
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func (sh *shell) add(args []string) error {
	if len(args) < 4 {
		return errors.New("usage: add <date> <debit> <credit> <amount> [memo]")
	}
	date, amount, err := parseDateAmount(args[0], args[3])
	if err != nil {
		return err
	}
	id, err := sh.sess.Add(model.JournalEntry{
		Date:       date,
		DebitCode:  sh.resolve(args[1]),
		CreditCode: sh.resolve(args[2]),
		Amount:     amount,
		Memo:       strings.Join(args[4:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Posted %s.\n", id)
	return nil
}

func (sh *shell) preset(args []string) error {
	if len(args) < 3 {
		return errors.New("usage: preset <key> <date> <amount> [memo]")
	}
	date, amount, err := parseDateAmount(args[1], args[2])
	if err != nil {
		return err
	}
	id, err := sh.sess.ApplyPreset(args[0], model.JournalEntry{
		Date:   date,
		Amount: amount,
		Memo:   strings.Join(args[3:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Posted %s.\n", id)
	return nil
}

func (sh *shell) save(path string) error {
	if err := saveEntries(path, sh.sess.Entries()); err != nil {
		return err
	}
	sh.log.Info().Str("file", path).Int("entries", sh.sess.Len()).Msg("journal saved")
	fmt.Fprintf(sh.out, "Saved %d entries to %s.\n", sh.sess.Len(), path)
	return nil
}

// resolve maps an account name to its code. Codes and unknown tokens pass
// through untouched so the ledger can report them.
func (sh *shell) resolve(token string) string {
	chart := sh.sess.Chart()
	if chart.Exists(token) {
		return token
	}
	for _, acct := range chart.All() {
		if strings.EqualFold(acct.Name, token) {
			return acct.Code
		}
	}
	return token
}

func parseDateAmount(dateStr, amountStr string) (time.Time, decimal.Decimal, error) {
	date, err := journal.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, err
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}
	return date, amount, nil
}
