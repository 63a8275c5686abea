package accounts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func TestDefaultChart(t *testing.T) {
	chart, err := DefaultChart(DefaultChartName)
	require.NoError(t, err)
	require.Len(t, chart, 13, "didactic chart has 13 accounts")

	types := make(map[model.AccountType]int)
	for _, acct := range chart {
		assert.NotEmpty(t, acct.Name, "account %s missing name", acct.Code)
		assert.Equal(t, model.NormalSideFor(acct.Type), acct.NormalSide, "account %s side", acct.Code)
		types[acct.Type]++
	}
	assert.Len(t, types, 5, "chart spans all five groups")
}

func TestDefaultChart_UnknownName(t *testing.T) {
	_, err := DefaultChart("unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownChart)

	empty, err := DefaultChart("")
	require.NoError(t, err)
	assert.Len(t, empty, 13, "empty name selects the didactic chart")
}

func TestLookup(t *testing.T) {
	chart := MustDefault()

	acct, err := chart.Lookup(CodeCash)
	require.NoError(t, err)
	assert.Equal(t, "Caixa", acct.Name)
	assert.Equal(t, model.AccountTypeAsset, acct.Type)

	_, err = chart.Lookup("9.9.9")
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "9.9.9")

	assert.True(t, chart.Exists(CodeSales))
	assert.False(t, chart.Exists("9.9.9"))
}

func TestIndexFollowsChartOrder(t *testing.T) {
	chart := MustDefault()
	assert.Equal(t, 0, chart.Index(CodeCash))
	assert.Less(t, chart.Index(CodeInventory), chart.Index(CodePayables))
	assert.Equal(t, -1, chart.Index("nope"))
}

func TestByType(t *testing.T) {
	chart := MustDefault()

	assets := chart.ByType(model.AccountTypeAsset)
	assert.Len(t, assets, 5)
	for _, a := range assets {
		assert.Equal(t, model.AccountTypeAsset, a.Type)
	}
	assert.Len(t, chart.ByType(model.AccountTypeRevenue), 1)
}

func TestNewChart_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		accts []model.Account
	}{
		{"duplicate", []model.Account{
			{Code: "1", Name: "A", Type: model.AccountTypeAsset},
			{Code: "1", Name: "B", Type: model.AccountTypeAsset},
		}},
		{"no code", []model.Account{{Name: "A", Type: model.AccountTypeAsset}}},
		{"bad type", []model.Account{{Code: "1", Name: "A", Type: "income"}}},
		{"bad side", []model.Account{{Code: "1", Name: "A", Type: model.AccountTypeAsset, NormalSide: "up"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChart(tt.accts)
			assert.Error(t, err)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	chart := MustDefault()
	all := chart.All()
	all[0].Name = "changed"

	acct, _ := chart.Get(CodeCash)
	assert.Equal(t, "Caixa", acct.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chart := MustDefault()
	path := filepath.Join(t.TempDir(), "chart-of-accounts.csv")
	require.NoError(t, chart.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, chart.All(), got.All())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
