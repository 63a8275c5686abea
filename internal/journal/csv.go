package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Header is the CSV header for an entries file.
const Header = "entry_id,date,memo,debit_account,credit_account,amount"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colEntryID = 0
	colDate    = 1
	colMemo    = 2
	colDebit   = 3
	colCredit  = 4
	colAmount  = 5
)

// ReadEntries reads entry candidates from a CSV reader. The header row is
// optional, but when present it must match Header. The entry_id column may
// be empty; the ledger assigns IDs on Add.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading entries CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	start, err := dataStart(records[0], Header)
	if err != nil {
		return nil, err
	}
	var entries []model.JournalEntry
	for i, rec := range records[start:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", start+i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a CSV writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an entry to a CSV row.
func MarshalEntry(e model.JournalEntry) []string {
	row := make([]string, numFields)
	row[colEntryID] = e.ID
	if !e.Date.IsZero() {
		row[colDate] = e.Date.Format(dateFormat)
	}
	row[colMemo] = e.Memo
	row[colDebit] = e.DebitCode
	row[colCredit] = e.CreditCode
	row[colAmount] = e.Amount.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an entry. Only syntax is checked
// here; ledger rules are enforced by Ledger.Add.
func UnmarshalEntry(record []string) (model.JournalEntry, error) {
	if len(record) != numFields {
		return model.JournalEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var date time.Time
	if s := strings.TrimSpace(record[colDate]); s != "" {
		var err error
		date, err = time.Parse(dateFormat, s)
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing date %q: %w", s, err)
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.JournalEntry{
		ID:         strings.TrimSpace(record[colEntryID]),
		Date:       date,
		Memo:       record[colMemo],
		DebitCode:  strings.TrimSpace(record[colDebit]),
		CreditCode: strings.TrimSpace(record[colCredit]),
		Amount:     amount,
	}, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// dataStart returns 1 when first is the header row and 0 when the file
// starts straight with data. A row that names the first column like the
// header but differs elsewhere is an error, not data.
func dataStart(first []string, header string) (int, error) {
	fields := make([]string, len(first))
	for i, f := range first {
		fields[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(f, "\ufeff")))
	}
	want := strings.Split(header, ",")
	if fields[0] != want[0] {
		return 0, nil
	}
	if got := strings.Join(fields, ","); got != header {
		return 0, fmt.Errorf("unexpected header %q, want %q", got, header)
	}
	return 1, nil
}
