package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountDebitNatured(t *testing.T) {
	assert.True(t, Account{NormalSide: SideDebit}.DebitNatured())
	assert.False(t, Account{NormalSide: SideCredit}.DebitNatured())
}

func TestNormalSideFor(t *testing.T) {
	assert.Equal(t, SideDebit, NormalSideFor(AccountTypeAsset))
	assert.Equal(t, SideDebit, NormalSideFor(AccountTypeExpense))
	assert.Equal(t, SideCredit, NormalSideFor(AccountTypeLiability))
	assert.Equal(t, SideCredit, NormalSideFor(AccountTypeEquity))
	assert.Equal(t, SideCredit, NormalSideFor(AccountTypeRevenue))
}

func TestAccountTypeValid(t *testing.T) {
	for _, at := range AccountTypes {
		assert.True(t, at.Valid(), "%q should be valid", at)
	}
	assert.False(t, AccountType("income").Valid())
	assert.False(t, AccountType("").Valid())
}
