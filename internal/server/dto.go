package server

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/operations"
	"github.com/cleared-dev/ledgerlab/internal/reports"
)

const dateLayout = "2006-01-02"

type accountDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	NormalSide  string `json:"normal_side"`
	Description string `json:"description,omitempty"`
}

func toAccountDTO(a model.Account) accountDTO {
	return accountDTO{
		Code:        a.Code,
		Name:        a.Name,
		Type:        string(a.Type),
		NormalSide:  string(a.NormalSide),
		Description: a.Description,
	}
}

type presetDTO struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

func toPresetDTO(p operations.Preset) presetDTO {
	return presetDTO{Key: p.Key, Description: p.Description, Debit: p.DebitCode, Credit: p.CreditCode}
}

// entryRequest is the body of POST .../entries and POST .../presets/{key}.
// Debit and Credit are ignored for presets.
type entryRequest struct {
	Date   string          `json:"date"`
	Memo   string          `json:"memo"`
	Debit  string          `json:"debit"`
	Credit string          `json:"credit"`
	Amount decimal.Decimal `json:"amount"`
}

func (req entryRequest) entry() (model.JournalEntry, error) {
	e := model.JournalEntry{
		Memo:       req.Memo,
		DebitCode:  req.Debit,
		CreditCode: req.Credit,
		Amount:     req.Amount,
	}
	if req.Date != "" {
		d, err := journal.ParseDate(req.Date)
		if err != nil {
			return model.JournalEntry{}, err
		}
		e.Date = d
	}
	return e, nil
}

type entryDTO struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Memo       string `json:"memo"`
	Debit      string `json:"debit"`
	DebitName  string `json:"debit_name"`
	Credit     string `json:"credit"`
	CreditName string `json:"credit_name"`
	Amount     string `json:"amount"`
}

func toEntryDTO(e model.JournalEntry, chart *accounts.Chart) entryDTO {
	return entryDTO{
		ID:         e.ID,
		Date:       e.Date.Format(dateLayout),
		Memo:       e.Memo,
		Debit:      e.DebitCode,
		DebitName:  chart.Name(e.DebitCode),
		Credit:     e.CreditCode,
		CreditName: chart.Name(e.CreditCode),
		Amount:     e.Amount.StringFixed(2),
	}
}

type violationDTO struct {
	Rule        string `json:"rule"`
	Field       string `json:"field"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error      string         `json:"error"`
	Violations []violationDTO `json:"violations,omitempty"`
}

func toViolations(vs []journal.ValidationError) []violationDTO {
	out := make([]violationDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, violationDTO{Rule: string(v.Rule), Field: v.Field, Description: v.Description})
	}
	return out
}

// reportResponse wraps every report. Available is false when the ledger
// has no entries, in which case Report is omitted.
type reportResponse struct {
	Kind      string `json:"kind"`
	Available bool   `json:"available"`
	Report    any    `json:"report,omitempty"`
}

type rowDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	NormalSide   string `json:"normal_side"`
	TotalDebits  string `json:"total_debits"`
	TotalCredits string `json:"total_credits"`
	Balance      string `json:"balance"`
}

func toRows(rows []reports.TrialBalanceRow) []rowDTO {
	out := make([]rowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowDTO{
			Code:         r.Code,
			Name:         r.Name,
			Type:         string(r.Type),
			NormalSide:   string(r.NormalSide),
			TotalDebits:  r.TotalDebits.StringFixed(2),
			TotalCredits: r.TotalCredits.StringFixed(2),
			Balance:      r.Balance.StringFixed(2),
		})
	}
	return out
}

type trialBalanceDTO struct {
	Rows         []rowDTO `json:"rows"`
	TotalDebits  string   `json:"total_debits"`
	TotalCredits string   `json:"total_credits"`
	Balanced     bool     `json:"balanced"`
}

func toTrialBalanceDTO(tb reports.TrialBalance) trialBalanceDTO {
	return trialBalanceDTO{
		Rows:         toRows(tb.Rows),
		TotalDebits:  tb.TotalDebits.StringFixed(2),
		TotalCredits: tb.TotalCredits.StringFixed(2),
		Balanced:     tb.Balanced(),
	}
}

type sectionDTO struct {
	Rows  []rowDTO `json:"rows"`
	Total string   `json:"total"`
}

func toSectionDTO(s reports.Section) sectionDTO {
	return sectionDTO{Rows: toRows(s.Rows), Total: s.Total.StringFixed(2)}
}

type balanceSheetDTO struct {
	Assets                    sectionDTO `json:"assets"`
	Liabilities               sectionDTO `json:"liabilities"`
	Equity                    sectionDTO `json:"equity"`
	TotalAssets               string     `json:"total_assets"`
	TotalLiabilitiesAndEquity string     `json:"total_liabilities_and_equity"`
	Difference                string     `json:"difference"`
	Balanced                  bool       `json:"balanced"`
}

func toBalanceSheetDTO(bs reports.BalanceSheet) balanceSheetDTO {
	return balanceSheetDTO{
		Assets:                    toSectionDTO(bs.Assets),
		Liabilities:               toSectionDTO(bs.Liabilities),
		Equity:                    toSectionDTO(bs.Equity),
		TotalAssets:               bs.TotalAssets.StringFixed(2),
		TotalLiabilitiesAndEquity: bs.TotalLiabilitiesAndEquity.StringFixed(2),
		Difference:                bs.Difference().StringFixed(2),
		Balanced:                  bs.Balanced(),
	}
}

type incomeStatementDTO struct {
	Revenues     sectionDTO `json:"revenues"`
	Expenses     sectionDTO `json:"expenses"`
	TotalRevenue string     `json:"total_revenue"`
	TotalExpense string     `json:"total_expense"`
	NetResult    string     `json:"net_result"`
	Outcome      string     `json:"outcome"`
	Magnitude    string     `json:"magnitude"`
}

func toIncomeStatementDTO(is reports.IncomeStatement) incomeStatementDTO {
	return incomeStatementDTO{
		Revenues:     toSectionDTO(is.Revenues),
		Expenses:     toSectionDTO(is.Expenses),
		TotalRevenue: is.TotalRevenue.StringFixed(2),
		TotalExpense: is.TotalExpense.StringFixed(2),
		NetResult:    is.NetResult.StringFixed(2),
		Outcome:      string(is.Outcome()),
		Magnitude:    is.Magnitude().StringFixed(2),
	}
}

type cashLineDTO struct {
	EntryID     string `json:"entry_id"`
	Date        string `json:"date"`
	Memo        string `json:"memo"`
	CashAccount string `json:"cash_account"`
	Counter     string `json:"counter_account"`
	CounterName string `json:"counter_name"`
	Direction   string `json:"direction"`
	Activity    string `json:"activity"`
	Amount      string `json:"amount"`
}

type directDTO struct {
	Lines     []cashLineDTO `json:"lines"`
	Inflows   string        `json:"inflows"`
	Outflows  string        `json:"outflows"`
	Operating string        `json:"operating"`
	Other     string        `json:"other"`
	Net       string        `json:"net"`
}

type indirectDTO struct {
	NetIncome        string `json:"net_income"`
	DeltaReceivables string `json:"delta_receivables"`
	DeltaInventory   string `json:"delta_inventory"`
	DeltaPayables    string `json:"delta_payables"`
	Operating        string `json:"operating_cash_flow"`
}

type cashFlowDTO struct {
	Direct   directDTO   `json:"direct"`
	Indirect indirectDTO `json:"indirect"`
	Gap      string      `json:"gap"`
}

func toCashFlowDTO(cf reports.CashFlowStatement) cashFlowDTO {
	lines := make([]cashLineDTO, 0, len(cf.Direct.Lines))
	for _, ln := range cf.Direct.Lines {
		lines = append(lines, cashLineDTO{
			EntryID:     ln.EntryID,
			Date:        ln.Date.Format(dateLayout),
			Memo:        ln.Memo,
			CashAccount: ln.CashAccount,
			Counter:     ln.Counter.Code,
			CounterName: ln.Counter.Name,
			Direction:   string(ln.Direction),
			Activity:    string(ln.Activity),
			Amount:      ln.Amount.StringFixed(2),
		})
	}
	d, in := cf.Direct, cf.Indirect
	return cashFlowDTO{
		Direct: directDTO{
			Lines:     lines,
			Inflows:   d.Inflows.StringFixed(2),
			Outflows:  d.Outflows.StringFixed(2),
			Operating: d.Operating.StringFixed(2),
			Other:     d.Other.StringFixed(2),
			Net:       d.Net.StringFixed(2),
		},
		Indirect: indirectDTO{
			NetIncome:        in.NetIncome.StringFixed(2),
			DeltaReceivables: in.DeltaReceivables.StringFixed(2),
			DeltaInventory:   in.DeltaInventory.StringFixed(2),
			DeltaPayables:    in.DeltaPayables.StringFixed(2),
			Operating:        in.Operating.StringFixed(2),
		},
		Gap: cf.Gap().StringFixed(2),
	}
}
