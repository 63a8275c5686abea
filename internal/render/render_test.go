package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/reports"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999.5", "999.50"},
		{"1000", "1,000.00"},
		{"1234567.891", "1,234,567.89"},
		{"-1000", "-1,000.00"},
		{"-12.3", "-12.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestMoney(t *testing.T) {
	r := New(&bytes.Buffer{}, "R$")
	assert.Equal(t, "R$ 1,000.00", r.Money(decimal.NewFromInt(1000)))
	assert.Equal(t, "-R$ 1,000.00", r.Money(decimal.NewFromInt(-1000)))
	assert.Equal(t, "7.00", New(&bytes.Buffer{}, "").Money(decimal.NewFromInt(7)))
}

func TestSection_NoData(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "R$")
	called := false
	err := r.Section("Trial balance", reports.ErrNoData, func() { called = true })
	require.NoError(t, err)
	assert.False(t, called)
	assert.Contains(t, buf.String(), "Trial balance")
	assert.Contains(t, buf.String(), NoDataMessage)
}

func TestSection_OtherError(t *testing.T) {
	r := New(&bytes.Buffer{}, "")
	boom := errors.New("boom")
	assert.ErrorIs(t, r.Section("x", boom, func() {}), boom)
}

func sampleEntries() []model.JournalEntry {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return []model.JournalEntry{
		{ID: "2025-01-001", Date: day, Memo: "compra", DebitCode: accounts.CodeInventory, CreditCode: accounts.CodeCash, Amount: decimal.NewFromInt(1000)},
		{ID: "2025-01-002", Date: day, Memo: "venda", DebitCode: accounts.CodeCash, CreditCode: accounts.CodeSales, Amount: decimal.NewFromInt(500)},
	}
}

func TestReports(t *testing.T) {
	chart := accounts.MustDefault()
	entries := sampleEntries()
	tb, err := reports.BuildTrialBalance(chart, entries)
	require.NoError(t, err)
	bs, err := reports.DeriveBalanceSheet(tb)
	require.NoError(t, err)
	is, err := reports.DeriveIncomeStatement(tb)
	require.NoError(t, err)
	p, err := reports.NewProjector(chart, reports.CashFlowConfig{
		CashAccounts: []string{accounts.CodeCash},
		Receivables:  accounts.CodeReceivables,
		Inventory:    accounts.CodeInventory,
		Payables:     accounts.CodePayables,
	})
	require.NoError(t, err)
	cf, err := p.Project(entries, tb)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := New(&buf, "R$")
	r.Ledger(entries, chart)
	r.TrialBalance(tb)
	r.BalanceSheet(bs)
	r.IncomeStatement(is)
	r.CashFlow(cf)
	out := buf.String()

	assert.Contains(t, out, "2025-01-001")
	assert.Contains(t, out, "Estoques")
	assert.Contains(t, out, "R$ 1,500.00", "trial balance grand total")
	assert.Contains(t, out, "Total assets")
	assert.Contains(t, out, "Difference")
	assert.Contains(t, out, "Net profit")
	assert.Contains(t, out, "Direct method")
	assert.Contains(t, out, "outflow")
	assert.Contains(t, out, "Indirect method")
	assert.Contains(t, out, "-R$ 500.00", "indirect operating cash flow")
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "Net profit", OutcomeLabel(reports.OutcomeNetProfit))
	assert.Equal(t, "Net loss", OutcomeLabel(reports.OutcomeNetLoss))
	assert.Equal(t, "Break-even", OutcomeLabel(reports.OutcomeBreakEven))
}

func TestBalanceCheck(t *testing.T) {
	res, err := journal.CheckLines([]journal.Line{
		{Account: "Estoques", Side: model.SideDebit, Amount: decimal.NewFromInt(100)},
		{Account: "Caixa", Side: model.SideCredit, Amount: decimal.NewFromInt(100)},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, "").BalanceCheck(res)
	assert.Contains(t, buf.String(), "Balanced")
}

func TestChartAndPresets(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "")
	r.Chart(accounts.MustDefault())
	assert.Contains(t, buf.String(), "Receita de Vendas")
	assert.Contains(t, buf.String(), "1.1.1")
}
