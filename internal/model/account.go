package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every group in statement order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Valid reports whether t is one of the five groups.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Side is one side of a journal entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// NormalSideFor returns the side on which balances of the given group increase.
func NormalSideFor(t AccountType) Side {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code        string // dotted, e.g. "1.1.1"
	Name        string
	Type        AccountType
	NormalSide  Side
	Description string
}

// DebitNatured reports whether increases are recorded as debits.
func (a Account) DebitNatured() bool {
	return a.NormalSide == SideDebit
}
