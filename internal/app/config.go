package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// DataDir is the directory holding the mapping and directory files.
	DataDir string `env:"USERMAP_DATA_DIR"`
	// DBFile is the mapping file name inside DataDir.
	DBFile string `env:"USERMAP_DB_FILE" envDefault:"usermap.json"`
	// Mode is the addressing mode: accounts, identhost or nicks.
	Mode string `env:"USERMAP_ADDRESSING" envDefault:"accounts"`
	// CaseSensitive disables lowercase folding of keys.
	CaseSensitive bool `env:"USERMAP_CASE_SENSITIVE"`
	// Passphrase, when set, encrypts the mapping file at rest.
	Passphrase string `env:"USERMAP_PASSPHRASE"`
	// LogLevel is the minimum diagnostic level: debug, info, warn or error.
	LogLevel string `env:"USERMAP_LOG_LEVEL" envDefault:"info"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
