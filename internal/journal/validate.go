package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Rule names a journal entry invariant.
//
// Besides the three double-entry rules, the ledger enforces two input
// rules: amounts are whole cents, so 0.001 is rejected rather than rounded,
// and every entry carries a date, which the entry ID is derived from.
type Rule string

const (
	RuleNonPositiveAmount Rule = "non-positive-amount"
	RuleSameAccount       Rule = "same-account"
	RuleUnknownAccount    Rule = "unknown-account"
	RulePrecision         Rule = "precision"    // more than two decimal places
	RuleMissingDate       Rule = "missing-date" // zero date
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Rule        Rule
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.Field, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

var hundred = decimal.NewFromInt(100)

// ValidateEntry checks every invariant of a single entry and returns all violations.
func ValidateEntry(e model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	if e.Date.IsZero() {
		errs = append(errs, ValidationError{
			Rule:        RuleMissingDate,
			Field:       "date",
			Description: "entry date is required",
		})
	}

	if !e.Amount.IsPositive() {
		errs = append(errs, ValidationError{
			Rule:        RuleNonPositiveAmount,
			Field:       "amount",
			Description: fmt.Sprintf("amount %s must be greater than zero", e.Amount.String()),
		})
	} else if cents := e.Amount.Mul(hundred); !cents.Equal(cents.Floor()) {
		errs = append(errs, ValidationError{
			Rule:        RulePrecision,
			Field:       "amount",
			Description: fmt.Sprintf("amount %s has more than 2 decimal places", e.Amount.String()),
		})
	}

	if e.DebitCode == e.CreditCode {
		errs = append(errs, ValidationError{
			Rule:        RuleSameAccount,
			Field:       "credit_account",
			Description: fmt.Sprintf("debit and credit both post to %q", e.DebitCode),
		})
	}

	if !accounts.Exists(e.DebitCode) {
		errs = append(errs, ValidationError{
			Rule:        RuleUnknownAccount,
			Field:       "debit_account",
			Description: fmt.Sprintf("unknown account %q", e.DebitCode),
		})
	}
	if e.CreditCode != e.DebitCode && !accounts.Exists(e.CreditCode) {
		errs = append(errs, ValidationError{
			Rule:        RuleUnknownAccount,
			Field:       "credit_account",
			Description: fmt.Sprintf("unknown account %q", e.CreditCode),
		})
	}

	return errs
}
