package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidOutput is returned by Validate when the output format is unknown.
	ErrInvalidOutput = errors.New("invalid output format")
	// ErrConfigExists is returned by Save when it would replace a file.
	ErrConfigExists = errors.New("config file already exists")
)

// Config holds all drillbook configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
}

// OutputConfig controls how CLI results are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml, text
	Indent int    `yaml:"indent"` // json/yaml indentation width
}

// BatchConfig bounds the concurrent header batch command.
type BatchConfig struct {
	MaxConcurrency int `yaml:"max_concurrency"`
}

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// ValidOutputs lists all supported output formats.
var ValidOutputs = []string{OutputJSON, OutputYAML, OutputText}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format: OutputText,
			Indent: 2,
		},
		Batch: BatchConfig{
			MaxConcurrency: 4,
		},
	}
}

// DefaultPath returns the default config location, ~/.config/drillbook/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".drillbook", "config.yaml")
	}
	return filepath.Join(dir, "drillbook", "config.yaml")
}

// Load loads configuration from a YAML file.
// A missing file is not an error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
// An existing file is only replaced when overwrite is set; otherwise
// ErrConfigExists is returned.
func (c *Config) Save(path string, overwrite bool) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		return fmt.Errorf("failed to write config: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	return f.Close()
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("DRILLBOOK_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("DRILLBOOK_OUTPUT"); format != "" {
		c.Output.Format = strings.ToLower(format)
	}
	if debug := os.Getenv("DRILLBOOK_DEBUG"); debug != "" {
		if on, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	valid := false
	for _, f := range ValidOutputs {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidOutput, c.Output.Format, ValidOutputs)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must be >= 0")
	}
	if c.Batch.MaxConcurrency < 1 {
		return fmt.Errorf("batch.max_concurrency must be >= 1")
	}
	return c.Logging.Validate()
}
