package reports

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Chart is the part of the chart of accounts the builders consult.
type Chart interface {
	Lookup(code string) (model.Account, error)
	Index(code string) int
}

// TrialBalanceRow holds one active account's totals.
type TrialBalanceRow struct {
	Code         string
	Name         string
	Type         model.AccountType
	NormalSide   model.Side
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Balance      decimal.Decimal // signed by normal side
}

// TrialBalance lists every account with activity, in chart order.
type TrialBalance struct {
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// Empty reports whether no account has activity.
func (tb TrialBalance) Empty() bool {
	return len(tb.Rows) == 0
}

// Balanced reports whether grand total debits equal grand total credits.
func (tb TrialBalance) Balanced() bool {
	return tb.TotalDebits.Equal(tb.TotalCredits)
}

// Row returns the row for code.
func (tb TrialBalance) Row(code string) (TrialBalanceRow, bool) {
	for _, r := range tb.Rows {
		if r.Code == code {
			return r, true
		}
	}
	return TrialBalanceRow{}, false
}

// BalanceOf returns the signed balance of code, zero when the account has
// no activity.
func (tb TrialBalance) BalanceOf(code string) decimal.Decimal {
	if r, ok := tb.Row(code); ok {
		return r.Balance
	}
	return decimal.Zero
}

// ByType returns the rows of one group, keeping chart order.
func (tb TrialBalance) ByType(t model.AccountType) []TrialBalanceRow {
	var out []TrialBalanceRow
	for _, r := range tb.Rows {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

type accumulator struct {
	debits  decimal.Decimal
	credits decimal.Decimal
}

// BuildTrialBalance folds entries into per-account totals. Each entry adds
// its amount to the debit total of its debit account and to the credit total
// of its credit account.
func BuildTrialBalance(chart Chart, entries []model.JournalEntry) (TrialBalance, error) {
	if len(entries) == 0 {
		return TrialBalance{}, ErrNoData
	}

	acc := make(map[string]*accumulator)
	get := func(code string) *accumulator {
		a, ok := acc[code]
		if !ok {
			a = &accumulator{debits: decimal.Zero, credits: decimal.Zero}
			acc[code] = a
		}
		return a
	}
	for _, e := range entries {
		d := get(e.DebitCode)
		d.debits = d.debits.Add(e.Amount)
		c := get(e.CreditCode)
		c.credits = c.credits.Add(e.Amount)
	}

	tb := TrialBalance{TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
	for code, a := range acc {
		if a.debits.IsZero() && a.credits.IsZero() {
			continue
		}
		acct, err := chart.Lookup(code)
		if err != nil {
			return TrialBalance{}, fmt.Errorf("building trial balance: %w", err)
		}
		bal := a.debits.Sub(a.credits)
		if !acct.DebitNatured() {
			bal = bal.Neg()
		}
		tb.Rows = append(tb.Rows, TrialBalanceRow{
			Code:         acct.Code,
			Name:         acct.Name,
			Type:         acct.Type,
			NormalSide:   acct.NormalSide,
			TotalDebits:  a.debits,
			TotalCredits: a.credits,
			Balance:      bal,
		})
	}
	if tb.Empty() {
		return TrialBalance{}, ErrNoData
	}

	sort.Slice(tb.Rows, func(i, j int) bool {
		return chart.Index(tb.Rows[i].Code) < chart.Index(tb.Rows[j].Code)
	})
	for _, r := range tb.Rows {
		tb.TotalDebits = tb.TotalDebits.Add(r.TotalDebits)
		tb.TotalCredits = tb.TotalCredits.Add(r.TotalCredits)
	}
	return tb, nil
}
