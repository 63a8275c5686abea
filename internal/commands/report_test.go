package commands_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func writeJournal(t *testing.T, path string, entries []model.JournalEntry) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, journal.WriteEntries(f, entries))
}

func sampleJournal() []model.JournalEntry {
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	return []model.JournalEntry{
		{Date: day, Memo: "compra", DebitCode: accounts.CodeInventory, CreditCode: accounts.CodeCash, Amount: decimal.NewFromInt(1000)},
		{Date: day, Memo: "venda", DebitCode: accounts.CodeCash, CreditCode: accounts.CodeSales, Amount: decimal.NewFromInt(1500)},
	}
}

func TestReport_All(t *testing.T) {
	dir, cfgPath := initProject(t)
	entries := filepath.Join(dir, "journal", "entries.csv")
	writeJournal(t, entries, sampleJournal())

	out, err := runLedgerlab(t, "", "--config", cfgPath, "report", "--entries", entries)
	require.NoError(t, err)

	assert.Contains(t, out, "Journal")
	assert.Contains(t, out, "2025-03-001")
	assert.Contains(t, out, "Trial balance")
	assert.Contains(t, out, "R$ 2,500.00")
	assert.Contains(t, out, "Balance sheet")
	assert.Contains(t, out, "Income statement")
	assert.Contains(t, out, "Net profit")
	assert.Contains(t, out, "Cash flow")
	assert.NotContains(t, out, "no data available")
}

func TestReport_SingleKind(t *testing.T) {
	dir, cfgPath := initProject(t)
	entries := filepath.Join(dir, "journal", "entries.csv")
	writeJournal(t, entries, sampleJournal())

	out, err := runLedgerlab(t, "", "--config", cfgPath, "report", "income-statement", "--entries", entries)
	require.NoError(t, err)
	assert.Contains(t, out, "Net profit")
	assert.NotContains(t, out, "Trial balance")
}

func TestReport_EmptyJournal(t *testing.T) {
	dir, cfgPath := initProject(t)

	out, err := runLedgerlab(t, "", "--config", cfgPath, "report", "--entries", filepath.Join(dir, "journal", "entries.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "no data available")
	assert.NotContains(t, out, "R$ 0.00")
}

func TestReport_RejectsInvalidEntry(t *testing.T) {
	dir, cfgPath := initProject(t)
	entries := filepath.Join(dir, "bad.csv")
	bad := sampleJournal()
	bad[1].CreditCode = bad[1].DebitCode
	writeJournal(t, entries, bad)

	_, err := runLedgerlab(t, "", "--config", cfgPath, "report", "--entries", entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Contains(t, err.Error(), "same-account")
}

func TestReport_UnknownKind(t *testing.T) {
	dir, cfgPath := initProject(t)

	_, err := runLedgerlab(t, "", "--config", cfgPath, "report", "ledgers", "--entries", filepath.Join(dir, "journal", "entries.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report")
}

func TestCheckCommand(t *testing.T) {
	_, cfgPath := initProject(t)

	out, err := runLedgerlab(t, "", "--config", cfgPath, "check", "d:Estoques:1000", "c:Caixa:400", "c:Fornecedores:600")
	require.NoError(t, err)
	assert.Contains(t, out, "Balanced")

	out, err = runLedgerlab(t, "", "--config", cfgPath, "check", "d:Estoques:1000", "c:Caixa:400")
	require.Error(t, err)
	assert.Contains(t, out, "Not balanced")

	_, err = runLedgerlab(t, "", "--config", cfgPath, "check", "x:Caixa:1")
	assert.Error(t, err)
}

func TestReport_HeaderlessJournal(t *testing.T) {
	dir, cfgPath := initProject(t)
	entries := filepath.Join(dir, "headerless.csv")
	require.NoError(t, os.WriteFile(entries, []byte(",2025-01-10,,1.1.1,3.1.1,500.00\n"), 0o644))

	out, err := runLedgerlab(t, "", "--config", cfgPath, "report", "trial-balance", "--entries", entries)
	require.NoError(t, err)
	assert.NotContains(t, out, "no data available")
	assert.Contains(t, out, "R$ 500.00")
}
