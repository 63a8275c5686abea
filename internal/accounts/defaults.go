package accounts

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// DefaultChartName selects the built-in didactic chart.
const DefaultChartName = "didactic"

// Codes of the didactic chart that other packages refer to by default.
const (
	CodeCash        = "1.1.1"
	CodeBank        = "1.1.2"
	CodeReceivables = "1.1.3"
	CodeInventory   = "1.1.4"
	CodePayables    = "2.1.1"
	CodeSales       = "3.1.1"
)

// ErrUnknownChart is returned for a chart name with no built-in table.
var ErrUnknownChart = errors.New("unknown built-in chart")

// DefaultChart returns a built-in chart of accounts by name. An empty name
// selects DefaultChartName.
func DefaultChart(name string) ([]model.Account, error) {
	if name != "" && name != DefaultChartName {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownChart, name, DefaultChartName)
	}
	return didacticChart(), nil
}

func didacticChart() []model.Account {
	return []model.Account{
		{Code: CodeCash, Name: "Caixa", Type: model.AccountTypeAsset, NormalSide: model.SideDebit, Description: "Cash on hand"},
		{Code: CodeBank, Name: "Bancos Conta Movimento", Type: model.AccountTypeAsset, NormalSide: model.SideDebit, Description: "Checking accounts"},
		{Code: CodeReceivables, Name: "Clientes", Type: model.AccountTypeAsset, NormalSide: model.SideDebit, Description: "Accounts receivable"},
		{Code: CodeInventory, Name: "Estoques", Type: model.AccountTypeAsset, NormalSide: model.SideDebit, Description: "Goods held for sale"},
		{Code: "1.2.1", Name: "Imobilizado", Type: model.AccountTypeAsset, NormalSide: model.SideDebit, Description: "Property and equipment"},
		{Code: CodePayables, Name: "Fornecedores", Type: model.AccountTypeLiability, NormalSide: model.SideCredit, Description: "Accounts payable"},
		{Code: "2.1.2", Name: "Salários a Pagar", Type: model.AccountTypeLiability, NormalSide: model.SideCredit, Description: "Accrued wages"},
		{Code: "2.2.1", Name: "Empréstimos e Financiamentos", Type: model.AccountTypeLiability, NormalSide: model.SideCredit, Description: "Loans payable"},
		{Code: "2.3.1", Name: "Capital Social", Type: model.AccountTypeEquity, NormalSide: model.SideCredit, Description: "Paid-in capital"},
		{Code: "2.3.2", Name: "Lucros Acumulados", Type: model.AccountTypeEquity, NormalSide: model.SideCredit, Description: "Retained earnings"},
		{Code: CodeSales, Name: "Receita de Vendas", Type: model.AccountTypeRevenue, NormalSide: model.SideCredit, Description: "Sales revenue"},
		{Code: "4.1.1", Name: "Custo das Mercadorias Vendidas", Type: model.AccountTypeExpense, NormalSide: model.SideDebit, Description: "Cost of goods sold"},
		{Code: "4.2.1", Name: "Despesas Administrativas", Type: model.AccountTypeExpense, NormalSide: model.SideDebit, Description: "General and administrative expenses"},
	}
}
