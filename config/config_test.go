package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, 610000, cfg.Simulation.Vendors)
	assert.Equal(t, 12.0, cfg.Simulation.PriceMin)
	assert.Equal(t, 18.0, cfg.Simulation.PriceMax)
	assert.Equal(t, 1000, cfg.Simulation.Steps)
	assert.Equal(t, 2, cfg.Simulation.AdjustEvery)
	assert.Equal(t, "none", cfg.Journal.Type)
	assert.NoError(t, cfg.Validate())
}

func TestParams(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Seed = 7
	cfg.Simulation.Workers = 3

	p := cfg.Simulation.Params()
	assert.Equal(t, 610000, p.Vendors)
	assert.Equal(t, uint64(7), p.Seed)
	assert.Equal(t, 3, p.Workers)
	assert.Equal(t, 2, p.AdjustEvery)
	assert.Equal(t, 1, p.ReportEvery)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(*Config) {}, ""},
		{"zero vendors", func(c *Config) { c.Simulation.Vendors = 0 }, "simulation.vendors must be positive"},
		{"zero price min", func(c *Config) { c.Simulation.PriceMin = 0 }, "simulation.price_min must be positive"},
		{"max below min", func(c *Config) { c.Simulation.PriceMax = 10 }, "simulation.price_max must be greater than price_min"},
		{"negative steps", func(c *Config) { c.Simulation.Steps = -1 }, "simulation.steps must not be negative"},
		{"zero steps", func(c *Config) { c.Simulation.Steps = 0 }, ""},
		{"zero workers", func(c *Config) { c.Simulation.Workers = 0 }, "simulation.workers must be at least 1"},
		{"negative adjust", func(c *Config) { c.Simulation.AdjustEvery = -2 }, "simulation.adjust_every must not be negative"},
		{"negative report", func(c *Config) { c.Simulation.ReportEvery = -1 }, "simulation.report_every must not be negative"},
		{"unknown journal", func(c *Config) { c.Journal.Type = "postgres" }, "journal.type must be"},
		{"csv without files", func(c *Config) { c.Journal.Type = "csv" }, "journal runs_file and steps_file required"},
		{"sqlite without path", func(c *Config) { c.Journal.Type = "sqlite" }, "journal db_path required"},
		{"sqlite with path", func(c *Config) {
			c.Journal.Type = "sqlite"
			c.Journal.DBPath = "runs.db"
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Simulation.Seed = 1234
			cfg.Journal = JournalConfig{Type: "sqlite", DBPath: "runs.db"}
			cfg.Export.ParquetPath = "vendors.parquet"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  vendors: 1000\n  steps: 50\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Simulation.Vendors)
	assert.Equal(t, 50, cfg.Simulation.Steps)
	assert.Equal(t, 12.0, cfg.Simulation.PriceMin)
	assert.Equal(t, 18.0, cfg.Simulation.PriceMax)
	assert.Equal(t, 2, cfg.Simulation.AdjustEvery)
}

func TestLoadInvalid(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  vendors: -5\n"), 0644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	garbage := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("{not: [valid"), 0644))
	_, err = LoadFromFile(garbage)
	assert.Error(t, err)
}
