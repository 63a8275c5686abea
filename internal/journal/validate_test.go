package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	codes map[string]bool
}

func (m *mockAccounts) Exists(code string) bool {
	return m.codes[code]
}

func newMockAccounts(codes ...string) *mockAccounts {
	m := &mockAccounts{codes: make(map[string]bool)}
	for _, c := range codes {
		m.codes[c] = true
	}
	return m
}

var defaultAccounts = newMockAccounts("1.1.1", "1.1.3", "1.1.4", "2.1.1", "3.1.1", "4.2.1")

func entry(debit, credit, amount string) model.JournalEntry {
	return model.JournalEntry{
		Date:       date(2025, 1, 15),
		DebitCode:  debit,
		CreditCode: credit,
		Amount:     dec(amount),
	}
}

func rules(errs []ValidationError) []Rule {
	var out []Rule
	for _, e := range errs {
		out = append(out, e.Rule)
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	errs := ValidateEntry(entry("1.1.4", "1.1.1", "1000.00"), defaultAccounts)
	assert.Empty(t, errs)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name string
		e    model.JournalEntry
		want Rule
	}{
		{"zero amount", entry("1.1.4", "1.1.1", "0"), RuleNonPositiveAmount},
		{"negative amount", entry("1.1.4", "1.1.1", "-10"), RuleNonPositiveAmount},
		{"same account", entry("1.1.1", "1.1.1", "10"), RuleSameAccount},
		{"unknown debit", entry("9.9.9", "1.1.1", "10"), RuleUnknownAccount},
		{"unknown credit", entry("1.1.1", "9.9.9", "10"), RuleUnknownAccount},
		{"too many decimals", entry("1.1.4", "1.1.1", "10.123"), RulePrecision},
		{"sub-cent amount", entry("1.1.4", "1.1.1", "0.001"), RulePrecision},
		{"no date", model.JournalEntry{DebitCode: "1.1.4", CreditCode: "1.1.1", Amount: dec("10")}, RuleMissingDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateEntry(tt.e, defaultAccounts)
			require.NotEmpty(t, errs)
			assert.Contains(t, rules(errs), tt.want)
		})
	}
}

func TestValidate_SameUnknownAccountReportedOnce(t *testing.T) {
	errs := ValidateEntry(entry("9.9.9", "9.9.9", "10"), defaultAccounts)
	assert.Equal(t, []Rule{RuleSameAccount, RuleUnknownAccount}, rules(errs))
}

func TestValidate_MultiError(t *testing.T) {
	errs := ValidateEntry(entry("9.9.9", "8.8.8", "0"), defaultAccounts)
	assert.Len(t, errs, 3)
}

func TestValidationError_Message(t *testing.T) {
	ve := ValidationError{Rule: RuleSameAccount, Field: "credit_account", Description: "debit and credit both post to \"1.1.1\""}
	assert.Equal(t, `same-account [credit_account]: debit and credit both post to "1.1.1"`, ve.Error())
}
