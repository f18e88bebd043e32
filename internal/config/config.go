// Package config loads the puzzle runner configuration from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings of the puzzle runner.
type Config struct {
	// InputDir contains one directory per day, each holding an input.txt.
	InputDir string        `yaml:"input_dir"`
	Timeout  string        `yaml:"timeout"`
	Logging  LoggingConfig `yaml:"logging"`
	Cloud    CloudConfig   `yaml:"cloud"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// CloudConfig locates the BigQuery table puzzle inputs are stored in.
type CloudConfig struct {
	Project         string `yaml:"project"`
	Dataset         string `yaml:"dataset"`
	Table           string `yaml:"table"`
	CredentialsFile string `yaml:"credentials_file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir: ".",
		Timeout:  "1m",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Cloud: CloudConfig{
			Dataset: "aoc",
			Table:   "puzzle_inputs",
		},
	}
}

// Load loads configuration from a YAML file. A missing file, or an empty path, yields the
// defaults. Environment overrides are applied in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if timeout := os.Getenv("AOC_TIMEOUT"); timeout != "" {
		c.Timeout = timeout
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if project := os.Getenv("GOOGLE_CLOUD_PROJECT"); project != "" {
		c.Cloud.Project = project
	}
	if dataset := os.Getenv("AOC_BQ_DATASET"); dataset != "" {
		c.Cloud.Dataset = dataset
	}
	if table := os.Getenv("AOC_BQ_TABLE"); table != "" {
		c.Cloud.Table = table
	}
}

// GetTimeout returns the solve timeout, or one minute if it is unset or invalid.
func (c *Config) GetTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	return time.Minute
}

// InputPath returns the input file of the given day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%d", day), "input.txt")
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout %q", c.Timeout)
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	return nil
}

var identifier = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Validate checks that the table can be queried. It is only called when cloud input is used.
func (c CloudConfig) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("cloud project is not set (cloud.project or GOOGLE_CLOUD_PROJECT)")
	}
	if !identifier.MatchString(c.Dataset) {
		return fmt.Errorf("invalid cloud dataset %q", c.Dataset)
	}
	if !identifier.MatchString(c.Table) {
		return fmt.Errorf("invalid cloud table %q", c.Table)
	}
	return nil
}

// TableRef returns the fully qualified table name for use in a query.
func (c CloudConfig) TableRef() string {
	return fmt.Sprintf("`%s.%s.%s`", c.Project, c.Dataset, c.Table)
}
