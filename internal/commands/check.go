package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/journal"
)

var errUnbalanced = errors.New("debits and credits differ")

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <side:account:amount>...",
		Short: "Check whether a multi-line entry balances",
		Long: `Check whether a multi-line entry balances. Each line is side:account:amount,
where side is d (debit) or c (credit), for example:

  ledgerlab check d:Estoques:1000 c:Caixa:400 c:Fornecedores:600`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := checkArgs(args)
			if err != nil {
				return err
			}
			a.renderer(cmd).BalanceCheck(res)
			if !res.Balanced {
				return errUnbalanced
			}
			return nil
		},
	}
}

func checkArgs(args []string) (journal.BalanceCheck, error) {
	lines := make([]journal.Line, 0, len(args))
	for _, arg := range args {
		ln, err := journal.ParseLine(arg)
		if err != nil {
			return journal.BalanceCheck{}, err
		}
		lines = append(lines, ln)
	}
	return journal.CheckLines(lines)
}
