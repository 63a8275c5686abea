package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func post(id, debit, credit, amount string) model.JournalEntry {
	return model.JournalEntry{
		ID:         id,
		Date:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		DebitCode:  debit,
		CreditCode: credit,
		Amount:     dec(amount),
	}
}

func defaultCashFlowConfig() CashFlowConfig {
	return CashFlowConfig{
		CashAccounts: []string{accounts.CodeCash, accounts.CodeBank},
		Receivables:  accounts.CodeReceivables,
		Inventory:    accounts.CodeInventory,
		Payables:     accounts.CodePayables,
	}
}
