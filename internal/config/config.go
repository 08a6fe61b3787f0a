package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"BlackjackOdds/internal/report"
	"BlackjackOdds/internal/rules"
)

// OutputConfig controls the CSV file written after each sweep.
type OutputConfig struct {
	CSVPath   string `yaml:"csv_path" env:"CSV_PATH"`
	Precision int    `yaml:"precision" env:"CSV_PRECISION"`
}

// SweepConfig bounds the hand totals swept and the goroutines used.
type SweepConfig struct {
	MinHand int `yaml:"min_hand" env:"SWEEP_MIN_HAND"`
	MaxHand int `yaml:"max_hand" env:"SWEEP_MAX_HAND"`
	Workers int `yaml:"workers" env:"SWEEP_WORKERS"`
}

// DisabledPath switches the SQLite history off when used as sqlite_path.
const DisabledPath = "-"

// DatabaseConfig points at the SQLite history database. After Load an empty
// SQLitePath means history is disabled.
type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
}

// ScheduleConfig enables periodic sweeps. An empty SweepCron disables them.
type ScheduleConfig struct {
	SweepCron  string `yaml:"sweep_cron" env:"CRON_SWEEP"`
	RunOnStart bool   `yaml:"run_on_start" env:"RUN_ON_START"`
}

// HTTPConfig enables the query server. An empty Address disables it.
type HTTPConfig struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS"`
}

// Config holds all application configuration.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Database DatabaseConfig `yaml:"database"`
	Schedule ScheduleConfig `yaml:"schedule"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Defaults
	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = "results.csv"
	}
	if cfg.Output.Precision == 0 {
		cfg.Output.Precision = report.DefaultPrecision
	}
	if cfg.Sweep.MinHand == 0 {
		cfg.Sweep.MinHand = rules.MinHand
	}
	if cfg.Sweep.MaxHand == 0 {
		cfg.Sweep.MaxHand = rules.MaxHand
	}
	switch cfg.Database.SQLitePath {
	case "":
		cfg.Database.SQLitePath = "data/blackjack_odds.db"
	case DisabledPath:
		cfg.Database.SQLitePath = ""
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be between 0 and 17")
	}
	if c.Sweep.MinHand < rules.MinHand || c.Sweep.MaxHand > rules.MaxTotal {
		return fmt.Errorf("sweep hands must lie in %d..%d", rules.MinHand, rules.MaxTotal)
	}
	if c.Sweep.MinHand > c.Sweep.MaxHand {
		return fmt.Errorf("sweep.min_hand must not exceed sweep.max_hand")
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must not be negative")
	}
	return nil
}

// Daemon reports whether the process should keep running after the first
// sweep, serving HTTP or waiting for the next scheduled run.
func (c *Config) Daemon() bool {
	return c.Schedule.SweepCron != "" || c.HTTP.Address != ""
}
