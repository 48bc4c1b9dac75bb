package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env"
	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"
)

// DefaultValues is the base configuration every other source overrides
const DefaultValues = `
[Log]
Level = "info"
Encoding = "console"

[Ledger]
TransactionLimit = 10

[Statement]
Format = "text"
Pretty = true

[Metrics]
DumpOnExit = false
`

// Config is the configuration of a banking session
type Config struct {
	Log       LogConfig       `toml:"Log" yaml:"log"`
	Ledger    LedgerConfig    `toml:"Ledger" yaml:"ledger"`
	Statement StatementConfig `toml:"Statement" yaml:"statement"`
	Metrics   MetricsConfig   `toml:"Metrics" yaml:"metrics"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level    string `toml:"Level" yaml:"level" env:"BANKING_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Encoding string `toml:"Encoding" yaml:"encoding" env:"BANKING_LOG_ENCODING" validate:"oneof=console json"`
}

// LedgerConfig configures deposit and withdrawal rules
type LedgerConfig struct {
	// TransactionLimit is the number of ledger entries an account may hold for the whole session
	TransactionLimit int `toml:"TransactionLimit" yaml:"transaction_limit" env:"BANKING_LEDGER_TRANSACTION_LIMIT" validate:"min=1"`
}

// StatementConfig selects how statements are rendered
type StatementConfig struct {
	Format string `toml:"Format" yaml:"format" env:"BANKING_STATEMENT_FORMAT" validate:"oneof=text json csv"`
	Pretty bool   `toml:"Pretty" yaml:"pretty" env:"BANKING_STATEMENT_PRETTY"`
}

// MetricsConfig controls the counters dump
type MetricsConfig struct {
	DumpOnExit bool `toml:"DumpOnExit" yaml:"dump_on_exit" env:"BANKING_METRICS_DUMP_ON_EXIT"`
}

func loadDefault(defaultValues string, cfg *Config) error {
	if _, err := toml.Decode(defaultValues, cfg); err != nil {
		return err
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	bs, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(bs, cfg)
	case ".toml", "":
		_, err = toml.Decode(string(bs), cfg)
		return err
	}

	return fmt.Errorf("unsupported configuration file type: %s", filepath.Ext(path))
}

func loadEnv(cfg *Config) error {
	for _, section := range []interface{}{&cfg.Log, &cfg.Ledger, &cfg.Statement, &cfg.Metrics} {
		if err := env.Parse(section); err != nil {
			return err
		}
	}
	return nil
}

// Load builds the configuration from the defaults, then the optional file at
// filePath, then BANKING_* environment variables, and validates the result
func Load(filePath string) (*Config, error) {
	var cfg Config

	if err := loadDefault(DefaultValues, &cfg); err != nil {
		return nil, fmt.Errorf("error loading default configuration: %w", err)
	}

	if filePath != "" {
		if err := loadFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("error loading configuration file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
