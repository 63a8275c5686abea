package reports

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func TestBuildTrialBalance_Empty(t *testing.T) {
	_, err := BuildTrialBalance(accounts.MustDefault(), nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildTrialBalance_InventoryPurchase(t *testing.T) {
	entries := []model.JournalEntry{post("1", accounts.CodeInventory, accounts.CodeCash, "1000")}

	tb, err := BuildTrialBalance(accounts.MustDefault(), entries)
	require.NoError(t, err)
	require.Len(t, tb.Rows, 2)

	// Chart order, not ledger order: Caixa (1.1.1) precedes Estoques (1.1.4).
	assert.Equal(t, accounts.CodeCash, tb.Rows[0].Code)
	assert.Equal(t, accounts.CodeInventory, tb.Rows[1].Code)

	assert.True(t, dec("-1000").Equal(tb.BalanceOf(accounts.CodeCash)))
	assert.True(t, dec("1000").Equal(tb.BalanceOf(accounts.CodeInventory)))

	cash, ok := tb.Row(accounts.CodeCash)
	require.True(t, ok)
	assert.True(t, cash.TotalDebits.IsZero())
	assert.True(t, dec("1000").Equal(cash.TotalCredits))
	assert.Equal(t, model.SideDebit, cash.NormalSide)
	assert.Equal(t, "Caixa", cash.Name)

	assert.True(t, tb.Balanced())
}

func TestBuildTrialBalance_CreditNatured(t *testing.T) {
	entries := []model.JournalEntry{
		post("1", accounts.CodeCash, accounts.CodeSales, "500"),
		post("2", accounts.CodeSales, accounts.CodeCash, "100"),
	}
	tb, err := BuildTrialBalance(accounts.MustDefault(), entries)
	require.NoError(t, err)

	sales, ok := tb.Row(accounts.CodeSales)
	require.True(t, ok)
	assert.True(t, dec("100").Equal(sales.TotalDebits))
	assert.True(t, dec("500").Equal(sales.TotalCredits))
	assert.True(t, dec("400").Equal(sales.Balance))
	assert.True(t, dec("400").Equal(tb.BalanceOf(accounts.CodeCash)))
}

func TestBuildTrialBalance_OmitsInactiveAccounts(t *testing.T) {
	tb, err := BuildTrialBalance(accounts.MustDefault(), []model.JournalEntry{post("1", accounts.CodeCash, accounts.CodeSales, "5")})
	require.NoError(t, err)
	_, ok := tb.Row(accounts.CodePayables)
	assert.False(t, ok)
	assert.True(t, tb.BalanceOf(accounts.CodePayables).IsZero())
}

func TestBuildTrialBalance_UnknownCode(t *testing.T) {
	_, err := BuildTrialBalance(accounts.MustDefault(), []model.JournalEntry{post("1", "9.9.9", accounts.CodeCash, "5")})
	require.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

func TestBuildTrialBalance_DoubleEntryProperty(t *testing.T) {
	chart := accounts.MustDefault()
	all := chart.All()
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		var entries []model.JournalEntry
		posted := decimal.Zero
		n := 1 + rng.Intn(20)
		for i := 0; i < n; i++ {
			d := all[rng.Intn(len(all))]
			c := all[rng.Intn(len(all))]
			if d.Code == c.Code {
				continue
			}
			amt := decimal.New(int64(1+rng.Intn(100000)), -2)
			posted = posted.Add(amt)
			entries = append(entries, post("x", d.Code, c.Code, amt.String()))
		}
		if len(entries) == 0 {
			continue
		}

		tb, err := BuildTrialBalance(chart, entries)
		require.NoError(t, err)
		assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits), "run %d", run)
		assert.True(t, posted.Equal(tb.TotalDebits), "run %d", run)

		sumDebits, sumCredits := decimal.Zero, decimal.Zero
		for _, r := range tb.Rows {
			sumDebits = sumDebits.Add(r.TotalDebits)
			sumCredits = sumCredits.Add(r.TotalCredits)
		}
		assert.True(t, sumDebits.Equal(sumCredits), "run %d", run)

		for i := 1; i < len(tb.Rows); i++ {
			assert.Less(t, chart.Index(tb.Rows[i-1].Code), chart.Index(tb.Rows[i].Code))
		}
	}
}

func TestBuildTrialBalance_Idempotent(t *testing.T) {
	chart := accounts.MustDefault()
	entries := []model.JournalEntry{
		post("1", accounts.CodeInventory, accounts.CodeCash, "1000"),
		post("2", accounts.CodeCash, accounts.CodeSales, "500"),
		post("3", accounts.CodeReceivables, accounts.CodeSales, "250"),
	}
	first, err := BuildTrialBalance(chart, entries)
	require.NoError(t, err)
	second, err := BuildTrialBalance(chart, entries)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildTrialBalance_InjectedChart(t *testing.T) {
	chart, err := accounts.NewChart([]model.Account{
		{Code: "A", Name: "Wallet", Type: model.AccountTypeAsset},
		{Code: "L", Name: "Loan", Type: model.AccountTypeLiability},
	})
	require.NoError(t, err)

	tb, err := BuildTrialBalance(chart, []model.JournalEntry{post("1", "A", "L", "75")})
	require.NoError(t, err)
	assert.True(t, dec("75").Equal(tb.BalanceOf("A")))
	assert.True(t, dec("75").Equal(tb.BalanceOf("L")))
}
