package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/puestos/sim"
	"gopkg.in/yaml.v3"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Export     ExportConfig     `json:"export" yaml:"export"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging"`
	Progress   bool             `json:"progress" yaml:"progress"`
}

// SimulationConfig contains the vendor population and loop parameters
type SimulationConfig struct {
	Vendors     int     `json:"vendors" yaml:"vendors"`
	PriceMin    float64 `json:"price_min" yaml:"price_min"`
	PriceMax    float64 `json:"price_max" yaml:"price_max"`
	Steps       int     `json:"steps" yaml:"steps"`
	Seed        uint64  `json:"seed" yaml:"seed"`
	Workers     int     `json:"workers" yaml:"workers"`
	AdjustEvery int     `json:"adjust_every" yaml:"adjust_every"`
	ReportEvery int     `json:"report_every" yaml:"report_every"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	RunsFile  string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	StepsFile string `json:"steps_file,omitempty" yaml:"steps_file,omitempty"`
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ExportConfig controls the final vendor snapshot.
type ExportConfig struct {
	ParquetPath string `json:"parquet_path,omitempty" yaml:"parquet_path,omitempty"`
}

type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
	JSON  bool   `json:"json" yaml:"json"`
}

// Params converts the simulation section for the engine.
func (s SimulationConfig) Params() sim.Params {
	return sim.Params{
		Vendors:     s.Vendors,
		PriceMin:    s.PriceMin,
		PriceMax:    s.PriceMax,
		Seed:        s.Seed,
		Workers:     s.Workers,
		AdjustEvery: s.AdjustEvery,
		ReportEvery: s.ReportEvery,
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON). Keys
// missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Vendors <= 0 {
		return fmt.Errorf("simulation.vendors must be positive")
	}
	if s.PriceMin <= 0 {
		return fmt.Errorf("simulation.price_min must be positive")
	}
	if s.PriceMax <= s.PriceMin {
		return fmt.Errorf("simulation.price_max must be greater than price_min")
	}
	if s.Steps < 0 {
		return fmt.Errorf("simulation.steps must not be negative")
	}
	if s.Workers < 1 {
		return fmt.Errorf("simulation.workers must be at least 1")
	}
	if s.AdjustEvery < 0 {
		return fmt.Errorf("simulation.adjust_every must not be negative")
	}
	if s.ReportEvery < 0 {
		return fmt.Errorf("simulation.report_every must not be negative")
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.StepsFile == "" {
			return fmt.Errorf("journal runs_file and steps_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns the reference scenario: 610,000 vendors priced 12 to
// 18, 1000 steps, prices adjusted every second step, no journal.
func Default() *Config {
	p := sim.DefaultParams()
	return &Config{
		Simulation: SimulationConfig{
			Vendors:     p.Vendors,
			PriceMin:    p.PriceMin,
			PriceMax:    p.PriceMax,
			Steps:       1000,
			Seed:        p.Seed,
			Workers:     p.Workers,
			AdjustEvery: p.AdjustEvery,
			ReportEvery: p.ReportEvery,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Progress: true,
	}
}
