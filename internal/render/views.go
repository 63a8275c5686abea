package render

import (
	"fmt"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/operations"
	"github.com/cleared-dev/ledgerlab/internal/reports"
)

// Chart lists every account.
func (r *Renderer) Chart(chart *accounts.Chart) {
	var rows [][]string
	for _, a := range chart.All() {
		rows = append(rows, []string{a.Code, a.Name, string(a.Type), string(a.NormalSide)})
	}
	r.table([]string{"Code", "Account", "Group", "Normal side"}, rows)
}

// Presets lists the canned operations with their suggested entry.
func (r *Renderer) Presets(presets []operations.Preset, chart *accounts.Chart) {
	var rows [][]string
	for _, p := range presets {
		rows = append(rows, []string{p.Key, p.Description, chart.Name(p.DebitCode), chart.Name(p.CreditCode)})
	}
	r.table([]string{"Key", "Operation", "Debit", "Credit"}, rows)
}

// Ledger prints the entries in insertion order.
func (r *Renderer) Ledger(entries []model.JournalEntry, chart *accounts.Chart) {
	var rows [][]string
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			e.Date.Format("2006-01-02"),
			e.Memo,
			chart.Name(e.DebitCode),
			chart.Name(e.CreditCode),
			r.Money(e.Amount),
		})
	}
	r.table([]string{"Entry", "Date", "Memo", "Debit", "Credit", "Amount"}, rows, 5)
}

// TrialBalance prints per-account totals and the grand totals.
func (r *Renderer) TrialBalance(tb reports.TrialBalance) {
	var rows [][]string
	for _, row := range tb.Rows {
		rows = append(rows, []string{
			row.Code,
			row.Name,
			string(row.NormalSide),
			r.Money(row.TotalDebits),
			r.Money(row.TotalCredits),
			r.Money(row.Balance),
		})
	}
	rows = append(rows, []string{"", "Total", "", r.Money(tb.TotalDebits), r.Money(tb.TotalCredits), ""})
	r.table([]string{"Code", "Account", "Nature", "Debits", "Credits", "Balance"}, rows, 3, 4, 5)
}

func (r *Renderer) section(s reports.Section, label string) {
	var rows [][]string
	for _, row := range s.Rows {
		rows = append(rows, []string{row.Code, row.Name, r.Money(row.Balance)})
	}
	rows = append(rows, []string{"", "Total " + label, r.Money(s.Total)})
	r.table([]string{"Code", label, "Balance"}, rows, 2)
}

// BalanceSheet prints both sides with their totals. A difference between
// the sides is shown, not corrected.
func (r *Renderer) BalanceSheet(bs reports.BalanceSheet) {
	r.section(bs.Assets, "Assets")
	r.section(bs.Liabilities, "Liabilities")
	r.section(bs.Equity, "Equity")
	r.line("Total assets", bs.TotalAssets)
	r.line("Total liabilities + equity", bs.TotalLiabilitiesAndEquity)
	if !bs.Balanced() {
		r.line("Difference", bs.Difference())
	}
}

// OutcomeLabel returns the wording for an income statement outcome.
func OutcomeLabel(o reports.Outcome) string {
	switch o {
	case reports.OutcomeNetProfit:
		return "Net profit"
	case reports.OutcomeNetLoss:
		return "Net loss"
	default:
		return "Break-even"
	}
}

// IncomeStatement prints revenues, expenses and the net result.
func (r *Renderer) IncomeStatement(is reports.IncomeStatement) {
	r.section(is.Revenues, "Revenue")
	r.section(is.Expenses, "Expenses")
	r.line("Total revenue", is.TotalRevenue)
	r.line("Total expenses", is.TotalExpense)
	r.line(OutcomeLabel(is.Outcome()), is.Magnitude())
}

// CashFlow prints the direct method lines and the indirect reconciliation.
func (r *Renderer) CashFlow(cf reports.CashFlowStatement) {
	fmt.Fprintln(r.w, "Direct method")
	if len(cf.Direct.Lines) == 0 {
		fmt.Fprintln(r.w, "  no entries moved cash")
	} else {
		var rows [][]string
		for _, ln := range cf.Direct.Lines {
			rows = append(rows, []string{
				ln.EntryID,
				ln.Date.Format("2006-01-02"),
				ln.Counter.Name,
				string(ln.Direction),
				string(ln.Activity),
				r.Money(ln.Amount),
			})
		}
		r.table([]string{"Entry", "Date", "Counter-account", "Flow", "Activity", "Amount"}, rows, 5)
	}
	r.line("Operating activities", cf.Direct.Operating)
	r.line("Other activities", cf.Direct.Other)
	r.line("Net cash flow", cf.Direct.Net)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Indirect method")
	r.line("Net income", cf.Indirect.NetIncome)
	r.line("(-) Change in receivables", cf.Indirect.DeltaReceivables)
	r.line("(-) Change in inventory", cf.Indirect.DeltaInventory)
	r.line("(+) Change in payables", cf.Indirect.DeltaPayables)
	r.line("Operating cash flow", cf.Indirect.Operating)
}

// BalanceCheck prints the result of a multi-line balance check.
func (r *Renderer) BalanceCheck(res journal.BalanceCheck) {
	var rows [][]string
	for _, ln := range res.Lines {
		debit, credit := "", ""
		if ln.Side == model.SideDebit {
			debit = r.Money(ln.Amount)
		} else {
			credit = r.Money(ln.Amount)
		}
		rows = append(rows, []string{ln.Account, debit, credit})
	}
	r.table([]string{"Account", "Debit", "Credit"}, rows, 1, 2)
	r.line("Total debits", res.TotalDebits)
	r.line("Total credits", res.TotalCredits)
	if res.Balanced {
		fmt.Fprintln(r.w, "  Balanced: debits equal credits.")
	} else {
		fmt.Fprintln(r.w, "  Not balanced: debits and credits differ.")
	}
}
