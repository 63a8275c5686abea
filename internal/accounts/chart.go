package accounts

import (
	"errors"
	"fmt"
	"os"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrAccountNotFound is returned by Lookup for codes outside the chart.
var ErrAccountNotFound = errors.New("account not found")

// Chart provides in-memory lookup over the chart of accounts. It is never
// mutated after construction.
type Chart struct {
	accounts []model.Account
	byCode   map[string]int
}

// NewChart creates a Chart from a slice of accounts, keeping their order.
// A missing normal side is derived from the account type.
func NewChart(accts []model.Account) (*Chart, error) {
	c := &Chart{
		accounts: make([]model.Account, 0, len(accts)),
		byCode:   make(map[string]int, len(accts)),
	}
	for _, a := range accts {
		if a.Code == "" {
			return nil, fmt.Errorf("account %q has no code", a.Name)
		}
		if _, dup := c.byCode[a.Code]; dup {
			return nil, fmt.Errorf("duplicate account code %s", a.Code)
		}
		if !a.Type.Valid() {
			return nil, fmt.Errorf("account %s: unknown type %q", a.Code, a.Type)
		}
		switch a.NormalSide {
		case "":
			a.NormalSide = model.NormalSideFor(a.Type)
		case model.SideDebit, model.SideCredit:
		default:
			return nil, fmt.Errorf("account %s: unknown normal side %q", a.Code, a.NormalSide)
		}
		c.byCode[a.Code] = len(c.accounts)
		c.accounts = append(c.accounts, a)
	}
	return c, nil
}

// MustDefault returns the default chart. It panics if the built-in table is broken.
func MustDefault() *Chart {
	c, err := NewChart(didacticChart())
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a chart-of-accounts CSV file and returns a Chart.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewChart(accts)
}

// Save writes the chart to a CSV file.
func (c *Chart) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// All returns all accounts in chart order.
func (c *Chart) All() []model.Account {
	out := make([]model.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Len returns the number of accounts.
func (c *Chart) Len() int {
	return len(c.accounts)
}

// Lookup resolves a code or returns an error wrapping ErrAccountNotFound.
func (c *Chart) Lookup(code string) (model.Account, error) {
	a, ok := c.Get(code)
	if !ok {
		return model.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, code)
	}
	return a, nil
}

// Get returns an account by code.
func (c *Chart) Get(code string) (model.Account, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return model.Account{}, false
	}
	return c.accounts[i], true
}

// Exists reports whether a code exists.
func (c *Chart) Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Index returns the position of code in chart order, or -1.
func (c *Chart) Index(code string) int {
	i, ok := c.byCode[code]
	if !ok {
		return -1
	}
	return i
}

// ByType returns all accounts of the given type.
func (c *Chart) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Name returns the account name for code, or the code itself when unknown.
func (c *Chart) Name(code string) string {
	if a, ok := c.Get(code); ok {
		return a.Name
	}
	return code
}
