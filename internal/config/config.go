// Package config loads runtime defaults from the environment.
// Command-line flags always take precedence over values loaded here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds per-invocation runtime defaults. It carries no secret
// material and nothing here outlives the process.
type Config struct {
	// LogLevel sets the zerolog level; defaults to warn so generated
	// output stays clean on stdout.
	LogLevel string `env:"PASSFORGE_LOG_LEVEL" envDefault:"warn"`
	// LogJSON switches diagnostics from console to JSON format.
	LogJSON bool `env:"PASSFORGE_LOG_JSON" envDefault:"false"`
	// Workers caps the batch worker pool; 1 keeps generation
	// sequential.
	Workers int `env:"PASSFORGE_WORKERS" envDefault:"1"`
	// WordlistPath points at a default custom word list file; empty
	// selects the embedded list.
	WordlistPath string `env:"PASSFORGE_WORDLIST"`
}

// Load reads configuration from PASSFORGE_* environment variables,
// honouring a local .env file when one exists.
func Load() (Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
