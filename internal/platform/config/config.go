// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the island server needs to boot.
type Config struct {
	Addr     string `envconfig:"ISLAND_ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DBPath is the sqlite file for the session transcript. Empty disables
	// persistence entirely.
	DBPath string `envconfig:"ISLAND_DB_PATH" default:"island.db"`

	// TickInterval drives the automatic day advance. Zero means days only
	// advance on explicit player action.
	TickInterval time.Duration `envconfig:"ISLAND_TICK_INTERVAL" default:"0"`

	// Seed fixes the weekly-event RNG. Zero picks a time-based seed.
	Seed int64 `envconfig:"ISLAND_SEED" default:"0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load island server config: %w", err)
	}
	return &cfg, nil
}
