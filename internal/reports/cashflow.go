package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// CashFlowConfig designates the cash-equivalent and working-capital accounts.
type CashFlowConfig struct {
	CashAccounts []string
	Receivables  string
	Inventory    string
	Payables     string
}

// Direction tells whether a cash line adds to or draws from cash.
type Direction string

const (
	Inflow  Direction = "inflow"
	Outflow Direction = "outflow"
)

// Activity is the cash-flow bucket of a line.
type Activity string

const (
	ActivityOperating Activity = "operating"
	ActivityOther     Activity = "other"
)

// ActivityFor buckets a counter-account group. Asset, liability, revenue
// and expense counter-accounts are all operating; everything else is other.
func ActivityFor(t model.AccountType) Activity {
	switch t {
	case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeRevenue, model.AccountTypeExpense:
		return ActivityOperating
	default:
		return ActivityOther
	}
}

// CashFlowLine is one ledger entry that moved cash.
type CashFlowLine struct {
	EntryID     string
	Date        time.Time
	Memo        string
	CashAccount string
	Counter     model.Account
	Direction   Direction
	Activity    Activity
	Amount      decimal.Decimal // positive for inflows, negative for outflows
}

// DirectCashFlow is the direct-method view: cash entries in ledger order.
type DirectCashFlow struct {
	Lines     []CashFlowLine
	Inflows   decimal.Decimal
	Outflows  decimal.Decimal // negative or zero
	Operating decimal.Decimal
	Other     decimal.Decimal
	Net       decimal.Decimal
}

// IndirectCashFlow bridges net income to operating cash flow through the
// working-capital accounts. Opening balances are taken as zero, so each
// delta is the account's current balance.
type IndirectCashFlow struct {
	NetIncome        decimal.Decimal
	DeltaReceivables decimal.Decimal
	DeltaInventory   decimal.Decimal
	DeltaPayables    decimal.Decimal
	Operating        decimal.Decimal
}

// CashFlowStatement carries both methods.
type CashFlowStatement struct {
	Direct   DirectCashFlow
	Indirect IndirectCashFlow
}

// Gap returns direct operating cash flow minus indirect operating cash flow.
func (s CashFlowStatement) Gap() decimal.Decimal {
	return s.Direct.Operating.Sub(s.Indirect.Operating)
}

// Projector derives cash-flow views for one chart and configuration.
type Projector struct {
	chart Chart
	cfg   CashFlowConfig
	cash  map[string]bool
}

// NewProjector validates cfg against chart.
func NewProjector(chart Chart, cfg CashFlowConfig) (*Projector, error) {
	if len(cfg.CashAccounts) == 0 {
		return nil, errors.New("cash flow: at least one cash account is required")
	}
	cash := make(map[string]bool, len(cfg.CashAccounts))
	for _, code := range cfg.CashAccounts {
		if _, err := chart.Lookup(code); err != nil {
			return nil, fmt.Errorf("cash flow: cash account: %w", err)
		}
		cash[code] = true
	}
	for _, wc := range []struct{ name, code string }{
		{"receivables", cfg.Receivables},
		{"inventory", cfg.Inventory},
		{"payables", cfg.Payables},
	} {
		if wc.code == "" {
			return nil, fmt.Errorf("cash flow: %s account is required", wc.name)
		}
		if _, err := chart.Lookup(wc.code); err != nil {
			return nil, fmt.Errorf("cash flow: %s account: %w", wc.name, err)
		}
	}
	return &Projector{chart: chart, cfg: cfg, cash: cash}, nil
}

// IsCash reports whether code is a designated cash account.
func (p *Projector) IsCash(code string) bool {
	return p.cash[code]
}

// Direct walks entries in ledger order. An entry whose debit leg hits cash
// is an inflow against its credit account; otherwise one whose credit leg
// hits cash is an outflow against its debit account. Entries that touch no
// cash account are left out.
func (p *Projector) Direct(entries []model.JournalEntry, tb TrialBalance) (DirectCashFlow, error) {
	if len(entries) == 0 || tb.Empty() {
		return DirectCashFlow{}, ErrNoData
	}

	df := DirectCashFlow{
		Inflows:   decimal.Zero,
		Outflows:  decimal.Zero,
		Operating: decimal.Zero,
		Other:     decimal.Zero,
		Net:       decimal.Zero,
	}
	for _, e := range entries {
		var ln CashFlowLine
		var counterCode string
		switch {
		case p.IsCash(e.DebitCode):
			ln.CashAccount, counterCode = e.DebitCode, e.CreditCode
			ln.Direction, ln.Amount = Inflow, e.Amount
		case p.IsCash(e.CreditCode):
			ln.CashAccount, counterCode = e.CreditCode, e.DebitCode
			ln.Direction, ln.Amount = Outflow, e.Amount.Neg()
		default:
			continue
		}

		counter, err := p.chart.Lookup(counterCode)
		if err != nil {
			return DirectCashFlow{}, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		ln.EntryID = e.ID
		ln.Date = e.Date
		ln.Memo = e.Memo
		ln.Counter = counter
		ln.Activity = ActivityFor(counter.Type)
		df.Lines = append(df.Lines, ln)

		if ln.Direction == Inflow {
			df.Inflows = df.Inflows.Add(ln.Amount)
		} else {
			df.Outflows = df.Outflows.Add(ln.Amount)
		}
		if ln.Activity == ActivityOperating {
			df.Operating = df.Operating.Add(ln.Amount)
		} else {
			df.Other = df.Other.Add(ln.Amount)
		}
		df.Net = df.Net.Add(ln.Amount)
	}
	return df, nil
}

// Indirect computes netIncome − ΔReceivables − ΔInventory + ΔPayables. No
// other non-cash adjustment is made.
func (p *Projector) Indirect(entries []model.JournalEntry, tb TrialBalance) (IndirectCashFlow, error) {
	if len(entries) == 0 || tb.Empty() {
		return IndirectCashFlow{}, ErrNoData
	}
	ic := IndirectCashFlow{
		NetIncome:        NetIncome(tb),
		DeltaReceivables: tb.BalanceOf(p.cfg.Receivables),
		DeltaInventory:   tb.BalanceOf(p.cfg.Inventory),
		DeltaPayables:    tb.BalanceOf(p.cfg.Payables),
	}
	ic.Operating = ic.NetIncome.
		Sub(ic.DeltaReceivables).
		Sub(ic.DeltaInventory).
		Add(ic.DeltaPayables)
	return ic, nil
}

// Project runs both methods.
func (p *Projector) Project(entries []model.JournalEntry, tb TrialBalance) (CashFlowStatement, error) {
	direct, err := p.Direct(entries, tb)
	if err != nil {
		return CashFlowStatement{}, err
	}
	indirect, err := p.Indirect(entries, tb)
	if err != nil {
		return CashFlowStatement{}, err
	}
	return CashFlowStatement{Direct: direct, Indirect: indirect}, nil
}
