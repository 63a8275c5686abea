package commands_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/commands"
	"github.com/cleared-dev/ledgerlab/internal/gitops"
	"github.com/cleared-dev/ledgerlab/internal/journal"
)

// runLedgerlab executes the CLI in-process and returns stdout.
func runLedgerlab(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// initProject creates a project in a temp dir and returns the config path.
func initProject(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	_, err := runLedgerlab(t, "", "init", dir)
	require.NoError(t, err)
	return dir, filepath.Join(dir, "ledgerlab.yaml")
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runLedgerlab(t, "", "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized ledgerlab project")
	assert.Contains(t, out, "13 accounts")

	for _, d := range []string{"accounts", "journal"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	_, cfgPath := initProject(t)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: didactic")
	assert.Contains(t, contents, "path: accounts/chart-of-accounts.csv")
	assert.Contains(t, contents, "currency: R$")
}

func TestInit_Accounts(t *testing.T) {
	dir, _ := initProject(t)

	chart, err := accounts.Load(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)
	assert.Equal(t, 13, chart.Len())
	assert.True(t, chart.Exists(accounts.CodeCash))
}

func TestInit_EmptyJournal(t *testing.T) {
	dir, _ := initProject(t)

	f, err := os.Open(filepath.Join(dir, "journal", "entries.csv"))
	require.NoError(t, err)
	defer f.Close()
	entries, err := journal.ReadEntries(f)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInit_RefusesExistingProject(t *testing.T) {
	dir, _ := initProject(t)

	_, err := runLedgerlab(t, "", "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runLedgerlab(t, "", "init", dir, "--force")
	assert.NoError(t, err)
}

func TestChartCommand(t *testing.T) {
	_, cfgPath := initProject(t)

	out, err := runLedgerlab(t, "", "--config", cfgPath, "chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Caixa")
	assert.Contains(t, out, "Receita de Vendas")
	assert.Contains(t, out, "1.1.1")
}

func TestPresetsCommand(t *testing.T) {
	_, cfgPath := initProject(t)

	out, err := runLedgerlab(t, "", "--config", cfgPath, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "credit-purchase")
	assert.Contains(t, out, "Fornecedores")
}

func TestInit_Git(t *testing.T) {
	if !gitops.Available() {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	out, err := runLedgerlab(t, "", "init", dir, "--git")
	require.NoError(t, err)
	assert.True(t, gitops.IsRepo(dir))

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	msg, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "init: ledgerlab project")
	assert.Contains(t, out, "13 accounts, ")
}

func TestInit_GitMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	dir := t.TempDir()

	_, err := runLedgerlab(t, "", "init", dir, "--git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git not found")

	_, statErr := os.Stat(filepath.Join(dir, "ledgerlab.yaml"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written when git is missing")
}

func TestInit_UnknownChart(t *testing.T) {
	dir := t.TempDir()

	_, err := runLedgerlab(t, "", "init", dir, "--chart", "ifrs-full")
	require.Error(t, err)
	assert.ErrorIs(t, err, accounts.ErrUnknownChart)

	_, statErr := os.Stat(filepath.Join(dir, "ledgerlab.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}
