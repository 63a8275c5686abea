package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	numFields  = 5
	colCode    = 0
	colName    = 1
	colType    = 2
	colSide    = 3
	colDesc    = 4
	headerLine = "code,name,type,normal_side,description"
)

// ReadAccounts reads chart-of-accounts.csv. The header row is optional.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	start := 0
	if isHeader(records[0]) {
		start = 1
	}
	var accounts []model.Account
	for i, rec := range records[start:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", start+i+1, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(headerLine, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colSide] = string(acct.NormalSide)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account. An empty normal_side
// column is left empty for NewChart to derive.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	code := strings.TrimSpace(record[colCode])
	if code == "" {
		return model.Account{}, fmt.Errorf("empty account code")
	}

	typ := model.AccountType(strings.ToLower(strings.TrimSpace(record[colType])))
	if !typ.Valid() {
		return model.Account{}, fmt.Errorf("parsing type %q: unknown account type", record[colType])
	}

	side := model.Side(strings.ToLower(strings.TrimSpace(record[colSide])))
	if side != "" && side != model.SideDebit && side != model.SideCredit {
		return model.Account{}, fmt.Errorf("parsing normal_side %q: must be debit or credit", record[colSide])
	}

	return model.Account{
		Code:        code,
		Name:        record[colName],
		Type:        typ,
		NormalSide:  side,
		Description: record[colDesc],
	}, nil
}

func isHeader(rec []string) bool {
	first := strings.TrimSpace(strings.TrimPrefix(rec[colCode], "\ufeff"))
	return strings.EqualFold(first, "code")
}
