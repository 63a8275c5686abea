package journal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrNoLines is returned by CheckLines when no line has both an account
// and a positive amount.
var ErrNoLines = errors.New("no lines with an account and a positive amount")

// balanceTolerance is the largest debit/credit gap still considered balanced.
var balanceTolerance = decimal.New(1, -2)

// Line is one row of a free-form, possibly multi-leg entry.
type Line struct {
	Account string
	Side    model.Side
	Amount  decimal.Decimal
}

// BalanceCheck is the outcome of CheckLines.
type BalanceCheck struct {
	Lines        []Line
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Balanced     bool
}

// Difference returns debits minus credits.
func (b BalanceCheck) Difference() decimal.Decimal {
	return b.TotalDebits.Sub(b.TotalCredits)
}

// CheckLines totals debit and credit lines and reports whether they match.
// Lines without an account or with a non-positive amount are skipped.
func CheckLines(lines []Line) (BalanceCheck, error) {
	res := BalanceCheck{TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
	for _, ln := range lines {
		if strings.TrimSpace(ln.Account) == "" || !ln.Amount.IsPositive() {
			continue
		}
		switch ln.Side {
		case model.SideDebit:
			res.TotalDebits = res.TotalDebits.Add(ln.Amount)
		case model.SideCredit:
			res.TotalCredits = res.TotalCredits.Add(ln.Amount)
		default:
			return BalanceCheck{}, fmt.Errorf("line %q: unknown side %q", ln.Account, ln.Side)
		}
		res.Lines = append(res.Lines, ln)
	}
	if len(res.Lines) == 0 {
		return BalanceCheck{}, ErrNoLines
	}
	res.Balanced = res.Difference().Abs().LessThan(balanceTolerance)
	return res, nil
}

// ParseLine parses "d:Account:100.00" or "credit:Account:50". The side
// prefix accepts d, debit, c and credit in any case.
func ParseLine(s string) (Line, error) {
	first := strings.Index(s, ":")
	last := strings.LastIndex(s, ":")
	if first < 0 || first == last {
		return Line{}, fmt.Errorf("line %q: expected side:account:amount", s)
	}

	var side model.Side
	switch strings.ToLower(strings.TrimSpace(s[:first])) {
	case "d", "debit":
		side = model.SideDebit
	case "c", "credit":
		side = model.SideCredit
	default:
		return Line{}, fmt.Errorf("line %q: side must be debit or credit", s)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(s[last+1:]))
	if err != nil {
		return Line{}, fmt.Errorf("line %q: parsing amount: %w", s, err)
	}

	return Line{
		Account: strings.TrimSpace(s[first+1 : last]),
		Side:    side,
		Amount:  amount,
	}, nil
}
