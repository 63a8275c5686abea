// Package render draws ledgers and reports as text tables.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/reports"
)

// NoDataMessage is printed in place of a report with nothing to show.
const NoDataMessage = "no data available"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	numStyle   = cellStyle.Align(lipgloss.Right)
	headStyle  = cellStyle.Bold(true)
)

// Renderer writes reports to w.
type Renderer struct {
	w        io.Writer
	currency string
}

// New creates a Renderer. currency prefixes every amount when non-empty.
func New(w io.Writer, currency string) *Renderer {
	return &Renderer{w: w, currency: currency}
}

// Section prints a title and then either draw's output or the no-data
// message when err is reports.ErrNoData. Any other error is returned.
func (r *Renderer) Section(title string, err error, draw func()) error {
	if err != nil && !errors.Is(err, reports.ErrNoData) {
		return err
	}
	fmt.Fprintln(r.w, titleStyle.Render(title))
	if err != nil {
		fmt.Fprintf(r.w, "  %s\n\n", NoDataMessage)
		return nil
	}
	draw()
	fmt.Fprintln(r.w)
	return nil
}

// Money formats an amount with two decimals, thousands separators and the
// currency prefix.
func (r *Renderer) Money(d decimal.Decimal) string {
	s := FormatAmount(d)
	if r.currency == "" {
		return s
	}
	if strings.HasPrefix(s, "-") {
		return "-" + r.currency + " " + s[1:]
	}
	return r.currency + " " + s
}

// FormatAmount renders d as "1,234.50".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String() + frac
	if neg {
		return "-" + out
	}
	return out
}

// table draws rows under headers; columns listed in numeric are right-aligned.
func (r *Renderer) table(headers []string, rows [][]string, numeric ...int) {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headStyle
			case right[col]:
				return numStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(r.w, t.String())
}

func (r *Renderer) line(label string, amount decimal.Decimal) {
	fmt.Fprintf(r.w, "  %-34s %s\n", label, r.Money(amount))
}
