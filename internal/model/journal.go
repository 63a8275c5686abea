package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one balanced posting: a single debit leg and a single
// credit leg of the same amount.
type JournalEntry struct {
	ID         string // "YYYY-MM-NNN", assigned by the ledger
	Date       time.Time
	Memo       string
	DebitCode  string
	CreditCode string
	Amount     decimal.Decimal
}
