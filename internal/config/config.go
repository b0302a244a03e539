package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the study planner
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
	Backup      BackupConfig      `yaml:"backup"`
}

// StorageConfig holds key/value database configuration
type StorageConfig struct {
	Dir            string        `yaml:"dir" env:"SP_DATA_DIR"`
	Filename       string        `yaml:"filename" env:"SP_DB_FILENAME"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"SP_DATA_DIR_PERMISSIONS"`
	BusyTimeout    time.Duration `yaml:"busy_timeout" env:"SP_DB_BUSY_TIMEOUT"`
}

// DisplayConfig holds output formatting configuration
type DisplayConfig struct {
	DateFormat   string `yaml:"date_format" env:"SP_DISPLAY_DATE_FORMAT"`
	TimeFormat   string `yaml:"time_format" env:"SP_DISPLAY_TIME_FORMAT"`
	SummaryWidth int    `yaml:"summary_width" env:"SP_DISPLAY_SUMMARY_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"SP_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"SP_APP_VERBOSE"`
	Debug   bool          `yaml:"debug" env:"SP_DEBUG"`
}

// BackupConfig holds export/import configuration
type BackupConfig struct {
	Dir string `yaml:"dir" env:"SP_BACKUP_DIR"`
}

// DefaultDataDir returns ~/.studyplanner, or the working directory when the
// home directory cannot be resolved.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".studyplanner"
	}
	return filepath.Join(homeDir, ".studyplanner")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:            DefaultDataDir(),
			Filename:       "planner.db",
			DirPermissions: 0755,
			BusyTimeout:    5 * time.Second,
		},
		Display: DisplayConfig{
			DateFormat:   "2006-01-02",
			TimeFormat:   "15:04",
			SummaryWidth: 72,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
			Debug:   false,
		},
		Backup: BackupConfig{
			Dir: ".",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Storage.Filename == ":memory:" {
		return c.Storage.Filename
	}
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// ConfigFilePath returns the YAML file consulted by the loader: SP_CONFIG when
// set, otherwise config.yaml inside the data directory (SP_DATA_DIR wins over
// the configured directory because the file is read before the env layer).
func (c *Config) ConfigFilePath() string {
	if path := os.Getenv("SP_CONFIG"); path != "" {
		return path
	}
	dir := c.Storage.Dir
	if envDir := os.Getenv("SP_DATA_DIR"); envDir != "" {
		dir = envDir
	}
	return filepath.Join(dir, "config.yaml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("SP_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("SP_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("SP_DATA_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if timeout := os.Getenv("SP_DB_BUSY_TIMEOUT"); timeout != "" {
		c.Storage.BusyTimeout = ParseDurationWithFallback(timeout, c.Storage.BusyTimeout)
	}

	// Display configuration
	if format := os.Getenv("SP_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if format := os.Getenv("SP_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if width := os.Getenv("SP_DISPLAY_SUMMARY_WIDTH"); width != "" {
		c.Display.SummaryWidth = ParseIntWithFallback(width, c.Display.SummaryWidth)
	}

	// Application configuration
	if timeout := os.Getenv("SP_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("SP_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if debug := os.Getenv("SP_DEBUG"); debug != "" {
		// any non-empty value turns debug on, matching logging.DebugEnabled
		c.Application.Debug = true
	}

	// Backup configuration
	if dir := os.Getenv("SP_BACKUP_DIR"); dir != "" {
		c.Backup.Dir = dir
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.BusyTimeout < 0 {
		return &ConfigError{Field: "storage.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.SummaryWidth < 20 {
		return &ConfigError{Field: "display.summary_width", Message: "summary width must be at least 20"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Backup.Dir == "" {
		return &ConfigError{Field: "backup.dir", Message: "backup directory cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
