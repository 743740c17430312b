// Package config resolves the CLI configuration from, in increasing
// precedence, built-in defaults, an optional YAML file, and environment
// variables. Command-line flags override on top in the cli layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/greenhaul/emissions"
)

// Config holds the settings of a pipeline invocation.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	RowLimit     int     `yaml:"row_limit"`
	DieselFactor float64 `yaml:"diesel_factor"`
	EVFactor     float64 `yaml:"ev_factor"`
	Workers      int     `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the console logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Output:       "emissions.csv",
		RowLimit:     emissions.DefaultRowLimit,
		DieselFactor: emissions.DefaultDieselFactor,
		EVFactor:     emissions.DefaultEVFactor,
		Workers:      4,
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and the environment apply. A .env file in the working directory
// is honored when present.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// optional .env, same as any other environment source
	_ = godotenv.Load()

	cfg.Input = getEnv("GREENHAUL_INPUT", cfg.Input)
	cfg.Output = getEnv("GREENHAUL_OUTPUT", cfg.Output)
	cfg.RowLimit = getEnvInt("GREENHAUL_ROW_LIMIT", cfg.RowLimit)
	cfg.DieselFactor = getEnvFloat("GREENHAUL_DIESEL_FACTOR", cfg.DieselFactor)
	cfg.EVFactor = getEnvFloat("GREENHAUL_EV_FACTOR", cfg.EVFactor)
	cfg.Workers = getEnvInt("GREENHAUL_WORKERS", cfg.Workers)
	cfg.Logging.Level = getEnv("GREENHAUL_LOG_LEVEL", cfg.Logging.Level)

	return cfg, nil
}

// Pipeline maps the resolved settings onto the core pipeline configuration.
// Validation stays with the core.
func (c Config) Pipeline() *emissions.Config {
	return &emissions.Config{
		RowLimit:     c.RowLimit,
		DieselFactor: c.DieselFactor,
		EVFactor:     c.EVFactor,
		Workers:      c.Workers,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
