package reports

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Section is one group of a statement with its total.
type Section struct {
	Type  model.AccountType
	Rows  []TrialBalanceRow
	Total decimal.Decimal
}

func section(tb TrialBalance, t model.AccountType) Section {
	s := Section{Type: t, Rows: tb.ByType(t), Total: decimal.Zero}
	for _, r := range s.Rows {
		s.Total = s.Total.Add(r.Balance)
	}
	return s
}

// BalanceSheet splits the asset, liability and equity rows of a trial
// balance into two sides.
type BalanceSheet struct {
	Assets                    Section
	Liabilities               Section
	Equity                    Section
	TotalAssets               decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
}

// Difference returns total assets minus total liabilities and equity.
// A ledger without opening equity or closing entries will usually show a
// non-zero difference; it is reported, never reconciled.
func (b BalanceSheet) Difference() decimal.Decimal {
	return b.TotalAssets.Sub(b.TotalLiabilitiesAndEquity)
}

// Balanced reports whether both sides have the same total.
func (b BalanceSheet) Balanced() bool {
	return b.Difference().IsZero()
}

// DeriveBalanceSheet groups trial balance rows into the balance sheet.
func DeriveBalanceSheet(tb TrialBalance) (BalanceSheet, error) {
	if tb.Empty() {
		return BalanceSheet{}, ErrNoData
	}
	bs := BalanceSheet{
		Assets:      section(tb, model.AccountTypeAsset),
		Liabilities: section(tb, model.AccountTypeLiability),
		Equity:      section(tb, model.AccountTypeEquity),
	}
	bs.TotalAssets = bs.Assets.Total
	bs.TotalLiabilitiesAndEquity = bs.Liabilities.Total.Add(bs.Equity.Total)
	return bs, nil
}

// Outcome is the presentation state of a net result.
type Outcome string

const (
	OutcomeNetProfit Outcome = "net-profit"
	OutcomeNetLoss   Outcome = "net-loss"
	OutcomeBreakEven Outcome = "break-even"
)

// IncomeStatement lists revenues and expenses and their net result.
type IncomeStatement struct {
	Revenues     Section
	Expenses     Section
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	NetResult    decimal.Decimal // revenue minus expense
}

// Outcome classifies the sign of the net result.
func (s IncomeStatement) Outcome() Outcome {
	switch s.NetResult.Sign() {
	case 1:
		return OutcomeNetProfit
	case -1:
		return OutcomeNetLoss
	default:
		return OutcomeBreakEven
	}
}

// Magnitude returns the absolute net result, as shown next to the outcome.
func (s IncomeStatement) Magnitude() decimal.Decimal {
	return s.NetResult.Abs()
}

// DeriveIncomeStatement groups revenue and expense rows and computes the
// net result.
func DeriveIncomeStatement(tb TrialBalance) (IncomeStatement, error) {
	if tb.Empty() {
		return IncomeStatement{}, ErrNoData
	}
	is := IncomeStatement{
		Revenues: section(tb, model.AccountTypeRevenue),
		Expenses: section(tb, model.AccountTypeExpense),
	}
	is.TotalRevenue = is.Revenues.Total
	is.TotalExpense = is.Expenses.Total
	is.NetResult = is.TotalRevenue.Sub(is.TotalExpense)
	return is, nil
}

// NetIncome returns ΣRevenue balance − ΣExpense balance.
func NetIncome(tb TrialBalance) decimal.Decimal {
	return section(tb, model.AccountTypeRevenue).Total.Sub(section(tb, model.AccountTypeExpense).Total)
}
