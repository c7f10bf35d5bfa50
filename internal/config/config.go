// Package config loads the environment settings shared by the jscst
// commands.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v7"
)

const envPrefix = "JSCST_"

// Config is read from JSCST_* environment variables. Command-line flags
// override the values they cover.
type Config struct {
	LogVerbosity  int           `env:"LOG_VERBOSITY"  envDefault:"0"`
	LogFile       string        `env:"LOG_FILE"       envDefault:""`
	CheckJobs     int           `env:"CHECK_JOBS"     envDefault:"4"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"1s"`
	Color         bool          `env:"COLOR"          envDefault:"true"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return load(env.Options{Prefix: envPrefix})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Prefix: envPrefix, Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.CheckJobs < 1 {
		return Config{}, fmt.Errorf("%sCHECK_JOBS must be at least 1, got %d", envPrefix, cfg.CheckJobs)
	}
	if cfg.WatchInterval <= 0 {
		return Config{}, fmt.Errorf("%sWATCH_INTERVAL must be positive, got %s", envPrefix, cfg.WatchInterval)
	}
	return cfg, nil
}
