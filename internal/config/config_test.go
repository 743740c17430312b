package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenhaul/emissions"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, emissions.DefaultRowLimit, cfg.RowLimit)
	assert.Equal(t, emissions.DefaultDieselFactor, cfg.DieselFactor)
	assert.Equal(t, emissions.DefaultEVFactor, cfg.EVFactor)
	assert.Equal(t, "emissions.csv", cfg.Output)
	assert.Equal(t, "info", cfg.Logging.Level)

	require.NoError(t, cfg.Pipeline().Validate())
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenhaul.yaml")
	raw := `input: trips.csv
row_limit: 5000
diesel_factor: 0.25
workers: 8
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "trips.csv", cfg.Input)
	assert.Equal(t, 5000, cfg.RowLimit)
	assert.Equal(t, 0.25, cfg.DieselFactor)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched fields keep their defaults
	assert.Equal(t, emissions.DefaultEVFactor, cfg.EVFactor)
}

func TestLoad_fileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoad_envOverrides(t *testing.T) {
	t.Setenv("GREENHAUL_INPUT", "env.csv")
	t.Setenv("GREENHAUL_ROW_LIMIT", "42")
	t.Setenv("GREENHAUL_EV_FACTOR", "0.04")
	t.Setenv("GREENHAUL_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env.csv", cfg.Input)
	assert.Equal(t, 42, cfg.RowLimit)
	assert.Equal(t, 0.04, cfg.EVFactor)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_badEnvValueFallsBack(t *testing.T) {
	t.Setenv("GREENHAUL_ROW_LIMIT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, emissions.DefaultRowLimit, cfg.RowLimit)
}

func TestConfig_Pipeline(t *testing.T) {
	cfg := Config{
		RowLimit:     7,
		DieselFactor: 0.3,
		EVFactor:     0.1,
		Workers:      2,
	}

	conf := cfg.Pipeline()

	assert.Equal(t, 7, conf.RowLimit)
	assert.Equal(t, 0.3, conf.DieselFactor)
	assert.Equal(t, 0.1, conf.EVFactor)
	assert.Equal(t, 2, conf.Workers)
}
