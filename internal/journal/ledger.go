package journal

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Ledger is the ordered, append-only list of journal entries for one
// session. The zero value is not usable; call NewLedger.
type Ledger struct {
	accounts AccountChecker
	entries  []model.JournalEntry
	seq      *id.Sequencer
}

// NewLedger creates an empty Ledger that validates codes against accounts.
func NewLedger(accounts AccountChecker) *Ledger {
	return &Ledger{accounts: accounts, seq: id.NewSequencer()}
}

// Add validates e and appends it, returning the assigned entry ID. Any
// incoming ID is replaced. On failure the ledger is unchanged and the
// error joins one ValidationError per violated rule.
func (l *Ledger) Add(e model.JournalEntry) (string, error) {
	e.Memo = strings.TrimSpace(e.Memo)
	e.DebitCode = strings.TrimSpace(e.DebitCode)
	e.CreditCode = strings.TrimSpace(e.CreditCode)

	if verrs := ValidateEntry(e, l.accounts); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, ve := range verrs {
			errs[i] = ve
		}
		return "", errors.Join(errs...)
	}

	e.ID = l.seq.Next(e.Date)
	l.entries = append(l.entries, e)
	return e.ID, nil
}

// All returns a snapshot of the entries in insertion order.
func (l *Ledger) All() []model.JournalEntry {
	out := make([]model.JournalEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Clear empties the ledger and restarts entry numbering.
func (l *Ledger) Clear() {
	l.entries = nil
	l.seq.Reset()
}

// TotalPosted returns the sum of all entry amounts.
func (l *Ledger) TotalPosted() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Amount)
	}
	return total
}

// FirstViolation extracts the first ValidationError from an error returned
// by Add, if any.
func FirstViolation(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}

// Violations returns every ValidationError carried by err, in rule order.
func Violations(err error) []ValidationError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []ValidationError
		for _, e := range joined.Unwrap() {
			out = append(out, Violations(e)...)
		}
		return out
	}
	if ve, ok := FirstViolation(err); ok {
		return []ValidationError{ve}
	}
	return nil
}
