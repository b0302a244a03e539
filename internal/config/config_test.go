package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "planner.db", cfg.Storage.Filename)
	assert.Equal(t, uint32(0755), cfg.Storage.DirPermissions)
	assert.Equal(t, 5*time.Second, cfg.Storage.BusyTimeout)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, "15:04", cfg.Display.TimeFormat)
	assert.Equal(t, 72, cfg.Display.SummaryWidth)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.Equal(t, ".", cfg.Backup.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestGetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = "/data"
	assert.Equal(t, filepath.Join("/data", "planner.db"), cfg.GetDatabasePath())

	cfg.Storage.Filename = ":memory:"
	assert.Equal(t, ":memory:", cfg.GetDatabasePath())
}

func TestConfigFilePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = "/data"

	t.Setenv("SP_CONFIG", "")
	t.Setenv("SP_DATA_DIR", "")
	assert.Equal(t, filepath.Join("/data", "config.yaml"), cfg.ConfigFilePath())

	t.Setenv("SP_DATA_DIR", "/elsewhere")
	assert.Equal(t, filepath.Join("/elsewhere", "config.yaml"), cfg.ConfigFilePath())

	t.Setenv("SP_CONFIG", "/etc/sp.yaml")
	assert.Equal(t, "/etc/sp.yaml", cfg.ConfigFilePath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SP_DATA_DIR", "/tmp/sp")
	t.Setenv("SP_DB_FILENAME", "other.db")
	t.Setenv("SP_DATA_DIR_PERMISSIONS", "0700")
	t.Setenv("SP_DB_BUSY_TIMEOUT", "2s")
	t.Setenv("SP_DISPLAY_DATE_FORMAT", "02/01/2006")
	t.Setenv("SP_DISPLAY_TIME_FORMAT", "3:04PM")
	t.Setenv("SP_DISPLAY_SUMMARY_WIDTH", "100")
	t.Setenv("SP_APP_TIMEOUT", "1m")
	t.Setenv("SP_APP_VERBOSE", "true")
	t.Setenv("SP_DEBUG", "1")
	t.Setenv("SP_BACKUP_DIR", "/backups")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/sp", cfg.Storage.Dir)
	assert.Equal(t, "other.db", cfg.Storage.Filename)
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, 2*time.Second, cfg.Storage.BusyTimeout)
	assert.Equal(t, "02/01/2006", cfg.Display.DateFormat)
	assert.Equal(t, "3:04PM", cfg.Display.TimeFormat)
	assert.Equal(t, 100, cfg.Display.SummaryWidth)
	assert.Equal(t, time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.True(t, cfg.Application.Debug)
	assert.Equal(t, "/backups", cfg.Backup.Dir)
}

func TestLoadFromEnvironment_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("SP_DB_BUSY_TIMEOUT", "soon")
	t.Setenv("SP_DISPLAY_SUMMARY_WIDTH", "wide")
	t.Setenv("SP_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5*time.Second, cfg.Storage.BusyTimeout)
	assert.Equal(t, 72, cfg.Display.SummaryWidth)
	assert.False(t, cfg.Application.Verbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
		{"negative busy timeout", func(c *Config) { c.Storage.BusyTimeout = -time.Second }, "storage.busy_timeout"},
		{"empty date format", func(c *Config) { c.Display.DateFormat = "" }, "display.date_format"},
		{"empty time format", func(c *Config) { c.Display.TimeFormat = "" }, "display.time_format"},
		{"narrow summary", func(c *Config) { c.Display.SummaryWidth = 10 }, "display.summary_width"},
		{"zero timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"empty backup dir", func(c *Config) { c.Backup.Dir = "" }, "backup.dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDurationWithFallback("3s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("x", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.True(t, ParseBoolWithFallback("nope", true))
	assert.Equal(t, uint32(0750), ParseUint32WithFallback("750", 8, 0755))
	assert.Equal(t, uint32(0755), ParseUint32WithFallback("9", 8, 0755))
}
