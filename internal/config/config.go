package config

import (
	"github.com/caarlos0/env/v11"

	"pledge-data/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the persistence backend (STORE_*).
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL store (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the SQLite store (SQLITE_*).
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// Business holds ledger and reporting constants (BUSINESS_*).
	Business configs.Business `envPrefix:"BUSINESS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
