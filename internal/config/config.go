package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/reports"
)

// FileName is the default config file name.
const FileName = "ledgerlab.yaml"

// Environment variables that override the file.
const (
	EnvLogLevel = "LEDGERLAB_LOG_LEVEL"
	EnvAddr     = "LEDGERLAB_ADDR"
	EnvChart    = "LEDGERLAB_CHART"
)

// Config represents the top-level ledgerlab.yaml configuration.
type Config struct {
	Chart    ChartConfig    `yaml:"chart"`
	CashFlow CashFlowConfig `yaml:"cash_flow"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Git      GitConfig      `yaml:"git"`
}

// ChartConfig selects the chart of accounts. A non-empty Path wins over Name.
type ChartConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
}

// CashFlowConfig designates the accounts the cash-flow statement inspects.
type CashFlowConfig struct {
	CashAccounts []string `yaml:"cash_accounts"`
	Receivables  string   `yaml:"receivables"`
	Inventory    string   `yaml:"inventory"`
	Payables     string   `yaml:"payables"`
}

// DisplayConfig controls report rendering.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// ServerConfig controls the HTTP session service.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxSessions caps live sessions. Zero means no cap.
	MaxSessions int `yaml:"max_sessions"`
	// SessionIdle evicts sessions unused for this long. Zero keeps them.
	SessionIdle time.Duration `yaml:"session_idle"`
}

// GitConfig is the identity used when committing the project.
type GitConfig struct {
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledgerlab.yaml file from disk and applies environment
// overrides. A relative chart path is taken relative to the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Chart.Path != "" && !filepath.IsAbs(cfg.Chart.Path) {
		cfg.Chart.Path = filepath.Join(filepath.Dir(path), cfg.Chart.Path)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default
// otherwise. A .env file in the working directory is read first when present.
func LoadOrDefault(path string) (*Config, error) {
	_ = godotenv.Load()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return Load(path)
}

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvChart)); v != "" {
		c.Chart.Path = v
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config wired to the built-in didactic chart.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Name: accounts.DefaultChartName,
		},
		CashFlow: CashFlowConfig{
			CashAccounts: []string{accounts.CodeCash, accounts.CodeBank},
			Receivables:  accounts.CodeReceivables,
			Inventory:    accounts.CodeInventory,
			Payables:     accounts.CodePayables,
		},
		Display: DisplayConfig{
			Currency: "R$",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Server: ServerConfig{
			Addr:        ":8080",
			MaxSessions: 1000,
			SessionIdle: 30 * time.Minute,
		},
		Git: GitConfig{
			AuthorName:  "ledgerlab",
			AuthorEmail: "ledgerlab@localhost",
		},
	}
}

// LoadChart returns the chart selected by the config.
func (c *Config) LoadChart() (*accounts.Chart, error) {
	if c.Chart.Path != "" {
		return accounts.Load(c.Chart.Path)
	}
	accts, err := accounts.DefaultChart(c.Chart.Name)
	if err != nil {
		return nil, err
	}
	return accounts.NewChart(accts)
}

// Projection converts the cash-flow section for the reports package.
func (c CashFlowConfig) Projection() reports.CashFlowConfig {
	cash := make([]string, len(c.CashAccounts))
	copy(cash, c.CashAccounts)
	return reports.CashFlowConfig{
		CashAccounts: cash,
		Receivables:  c.Receivables,
		Inventory:    c.Inventory,
		Payables:     c.Payables,
	}
}
