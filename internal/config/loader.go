package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
}

// NewLoader creates a new configuration loader that reads ./.env when present
func NewLoader() *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: []string{".env"},
	}
}

// NewLoaderWithEnvFiles creates a loader reading the given dotenv files instead of ./.env
func NewLoaderWithEnvFiles(files ...string) *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: files,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Export variables from .env files (existing environment wins)
// 3. Override with the YAML config file, if any
// 4. Override with environment variables
// 5. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromFile(l.config.ConfigFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}
	return nil
}

// LoadFromFile overlays values from a YAML file. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DataDir     *string
	DBFilename  *string
	BusyTimeout *time.Duration

	// Display overrides
	DateFormat   *string
	TimeFormat   *string
	SummaryWidth *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
	Debug   *bool

	// Backup overrides
	BackupDir *string
}

// Apply applies command line overrides to the configuration
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DataDir != nil {
		config.Storage.Dir = *o.DataDir
	}
	if o.DBFilename != nil {
		config.Storage.Filename = *o.DBFilename
	}
	if o.BusyTimeout != nil {
		config.Storage.BusyTimeout = *o.BusyTimeout
	}

	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}
	if o.TimeFormat != nil {
		config.Display.TimeFormat = *o.TimeFormat
	}
	if o.SummaryWidth != nil {
		config.Display.SummaryWidth = *o.SummaryWidth
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.Debug != nil {
		config.Application.Debug = *o.Debug
	}

	if o.BackupDir != nil {
		config.Backup.Dir = *o.BackupDir
	}
}
