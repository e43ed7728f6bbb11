package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Export  ExportConfig  `json:"export" yaml:"export"`
}

// AccountConfig seeds the session balance
type AccountConfig struct {
	Currency       string  `json:"currency" yaml:"currency"`
	InitialBalance float64 `json:"initial_balance" yaml:"initial_balance"`
}

// JournalConfig selects where session trades are held. Both backends live
// only as long as the process.
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "memory" or "sqlite"
	DSN  string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level             string `json:"level" yaml:"level"`
	Encoding          string `json:"encoding" yaml:"encoding"` // "json" or "console"
	Development       bool   `json:"development" yaml:"development"`
	DisableCaller     bool   `json:"disable_caller" yaml:"disable_caller"`
	DisableStacktrace bool   `json:"disable_stacktrace" yaml:"disable_stacktrace"`
}

// ServerConfig is used by the serve command
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// ExportConfig holds default output paths for the export commands
type ExportConfig struct {
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	OrgFile    string `json:"org_file,omitempty" yaml:"org_file,omitempty"`
	ChartFile  string `json:"chart_file,omitempty" yaml:"chart_file,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	b := c.Account.InitialBalance
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		return fmt.Errorf("account.initial_balance must be positive")
	}
	if c.Journal.Type != "memory" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'memory' or 'sqlite'")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("log.encoding must be 'json' or 'console'")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:       "USD",
			InitialBalance: 10000,
		},
		Journal: JournalConfig{
			Type: "memory",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Export: ExportConfig{
			TradesFile: "./trades.csv",
			EquityFile: "./equity.csv",
			OrgFile:    "./journal.org",
			ChartFile:  "./equity.html",
		},
	}
}
