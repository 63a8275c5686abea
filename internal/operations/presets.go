// Package operations holds the canned business operations of the lab and
// the quiz built on them.
package operations

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrUnknownPreset is returned by Find for a key no preset carries.
var ErrUnknownPreset = errors.New("unknown operation")

// Preset maps an economic operation to its debit and credit accounts.
type Preset struct {
	Key         string
	Description string
	DebitCode   string
	CreditCode  string
}

// Entry builds the journal entry candidate for this operation.
func (p Preset) Entry(date time.Time, amount decimal.Decimal, memo string) model.JournalEntry {
	if memo == "" {
		memo = p.Description
	}
	return model.JournalEntry{
		Date:       date,
		Memo:       memo,
		DebitCode:  p.DebitCode,
		CreditCode: p.CreditCode,
		Amount:     amount,
	}
}

// DefaultPresets returns the six operations of the didactic chart.
func DefaultPresets() []Preset {
	return []Preset{
		{Key: "cash-purchase", Description: "Compra de mercadorias à vista", DebitCode: accounts.CodeInventory, CreditCode: accounts.CodeCash},
		{Key: "credit-purchase", Description: "Compra de mercadorias a prazo", DebitCode: accounts.CodeInventory, CreditCode: accounts.CodePayables},
		{Key: "cash-sale", Description: "Venda de mercadorias à vista", DebitCode: accounts.CodeCash, CreditCode: accounts.CodeSales},
		{Key: "credit-sale", Description: "Venda de mercadorias a prazo", DebitCode: accounts.CodeReceivables, CreditCode: accounts.CodeSales},
		{Key: "supplier-payment", Description: "Pagamento de fornecedor", DebitCode: accounts.CodePayables, CreditCode: accounts.CodeCash},
		{Key: "customer-receipt", Description: "Recebimento de cliente", DebitCode: accounts.CodeCash, CreditCode: accounts.CodeReceivables},
	}
}

// Find returns the preset with key.
func Find(presets []Preset, key string) (Preset, error) {
	for _, p := range presets {
		if p.Key == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, key)
}

// Checker is the chart lookup used to validate presets.
type Checker interface {
	Exists(code string) bool
}

// Validate reports presets that reference codes missing from the chart.
func Validate(presets []Preset, chart Checker) error {
	for _, p := range presets {
		for _, code := range []string{p.DebitCode, p.CreditCode} {
			if !chart.Exists(code) {
				return fmt.Errorf("operation %s: unknown account %q", p.Key, code)
			}
		}
	}
	return nil
}
