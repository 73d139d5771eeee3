package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/navs23/fundinsights/agent"
)

// EnvPrefix is the prefix of the environment variables read by fi.
const EnvPrefix = "FI"

// Backends of the saved reports.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the fi configuration, read from FI_* environment variables (and
// a .env file) then overridden by the global flags.
type Config struct {
	Backend  string `envconfig:"BACKEND" default:"file" validate:"oneof=file sqlite"`
	Store    string `envconfig:"STORE"`
	Currency string `envconfig:"CURRENCY" default:"GBP" validate:"currency"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=trace debug info warn warning error fatal panic"`
	Model    string `envconfig:"MODEL" validate:"required"`
}

// LoadConfig returns the configuration of this run.
func LoadConfig() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := Config{Model: agent.DefaultModel}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if *backend != "" {
		cfg.Backend = *backend
	}
	if *storePath != "" {
		cfg.Store = *storePath
	}
	if *currencyCode != "" {
		cfg.Currency = *currencyCode
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Store == "" {
		path, err := defaultStore(cfg.Backend)
		if err != nil {
			return nil, err
		}
		cfg.Store = path
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	}); err != nil {
		return err
	}
	return v.Struct(c)
}

// defaultStore returns the store path in the user's home directory.
func defaultStore(backend string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the saved reports, use -store: %w", err)
	}
	name := "reports.jsonl"
	if backend == BackendSQLite {
		name = "reports.db"
	}
	return filepath.Join(home, ".fundinsights", name), nil
}
