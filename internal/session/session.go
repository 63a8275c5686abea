// Package session ties one chart of accounts, one ledger and the report
// builders together into the state of a single interactive session.
package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/operations"
	"github.com/cleared-dev/ledgerlab/internal/reports"
)

// Session is one user's ledger plus the read-only collaborators needed to
// report on it. It is not safe for concurrent use; see Store.
type Session struct {
	chart     *accounts.Chart
	ledger    *journal.Ledger
	projector *reports.Projector
	presets   []operations.Preset
	log       zerolog.Logger
}

// Option customizes a Session.
type Option func(*Session)

// WithPresets replaces the default operation presets.
func WithPresets(presets []operations.Preset) Option {
	return func(s *Session) { s.presets = presets }
}

// New creates an empty session for chart. The cash-flow configuration is
// validated against the chart up front.
func New(chart *accounts.Chart, cashFlow reports.CashFlowConfig, log zerolog.Logger, opts ...Option) (*Session, error) {
	projector, err := reports.NewProjector(chart, cashFlow)
	if err != nil {
		return nil, err
	}
	s := &Session{
		chart:     chart,
		ledger:    journal.NewLedger(chart),
		projector: projector,
		presets:   operations.DefaultPresets(),
		log:       log.With().Str("component", "session").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := operations.Validate(s.presets, chart); err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}
	return s, nil
}

// Chart returns the session's chart of accounts.
func (s *Session) Chart() *accounts.Chart {
	return s.chart
}

// Presets returns the operation presets available in this session.
func (s *Session) Presets() []operations.Preset {
	return s.presets
}

// Add validates and appends an entry, returning its ID.
func (s *Session) Add(e model.JournalEntry) (string, error) {
	entryID, err := s.ledger.Add(e)
	if err != nil {
		s.log.Debug().Err(err).
			Str("debit", e.DebitCode).
			Str("credit", e.CreditCode).
			Str("amount", e.Amount.String()).
			Msg("entry rejected")
		return "", err
	}
	s.log.Debug().
		Str("entry_id", entryID).
		Str("debit", e.DebitCode).
		Str("credit", e.CreditCode).
		Str("amount", e.Amount.StringFixed(2)).
		Msg("entry added")
	return entryID, nil
}

// ApplyPreset adds the entry of a named operation.
func (s *Session) ApplyPreset(key string, e model.JournalEntry) (string, error) {
	p, err := operations.Find(s.presets, key)
	if err != nil {
		return "", err
	}
	return s.Add(p.Entry(e.Date, e.Amount, e.Memo))
}

// Clear empties the ledger.
func (s *Session) Clear() {
	n := s.ledger.Len()
	s.ledger.Clear()
	s.log.Debug().Int("entries", n).Msg("ledger cleared")
}

// Entries returns the ledger in insertion order.
func (s *Session) Entries() []model.JournalEntry {
	return s.ledger.All()
}

// Len returns the number of entries.
func (s *Session) Len() int {
	return s.ledger.Len()
}

// TrialBalance recomputes the trial balance from the current ledger.
func (s *Session) TrialBalance() (reports.TrialBalance, error) {
	tb, err := reports.BuildTrialBalance(s.chart, s.ledger.All())
	if err != nil {
		return reports.TrialBalance{}, err
	}
	// Every entry posts its amount once on each side.
	posted := s.ledger.TotalPosted()
	if !tb.TotalDebits.Equal(posted) || !tb.TotalCredits.Equal(posted) {
		return reports.TrialBalance{}, fmt.Errorf("trial balance out of balance: debits %s, credits %s, posted %s",
			tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2), posted.StringFixed(2))
	}
	return tb, nil
}

// BalanceSheet recomputes the balance sheet.
func (s *Session) BalanceSheet() (reports.BalanceSheet, error) {
	tb, err := s.TrialBalance()
	if err != nil {
		return reports.BalanceSheet{}, err
	}
	return reports.DeriveBalanceSheet(tb)
}

// IncomeStatement recomputes the income statement.
func (s *Session) IncomeStatement() (reports.IncomeStatement, error) {
	tb, err := s.TrialBalance()
	if err != nil {
		return reports.IncomeStatement{}, err
	}
	return reports.DeriveIncomeStatement(tb)
}

// CashFlow recomputes both cash-flow methods.
func (s *Session) CashFlow() (reports.CashFlowStatement, error) {
	entries := s.ledger.All()
	tb, err := s.TrialBalance()
	if err != nil {
		return reports.CashFlowStatement{}, err
	}
	return s.projector.Project(entries, tb)
}

// CashFlowDirect recomputes the direct-method cash flow.
func (s *Session) CashFlowDirect() (reports.DirectCashFlow, error) {
	entries := s.ledger.All()
	tb, err := s.TrialBalance()
	if err != nil {
		return reports.DirectCashFlow{}, err
	}
	return s.projector.Direct(entries, tb)
}

// CashFlowIndirect recomputes the indirect-method cash flow.
func (s *Session) CashFlowIndirect() (reports.IndirectCashFlow, error) {
	entries := s.ledger.All()
	tb, err := s.TrialBalance()
	if err != nil {
		return reports.IndirectCashFlow{}, err
	}
	return s.projector.Indirect(entries, tb)
}
