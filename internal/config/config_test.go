package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "user-query-service/pkg/errors"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_DevelopmentDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "stdout", cfg.Logger.OutputPath)
	assert.False(t, cfg.Logger.EnableSampling)
	assert.Equal(t, "user-query-service", cfg.Logger.ServiceName)
	assert.Equal(t, "1.0.0", cfg.Logger.ServiceVersion)
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ProductionDefaultsFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestLoadConfig_ProductionDefaultsFromFile(t *testing.T) {
	dir := writeEnvFile(t, "APP_ENV=production\nSERVICE_NAME=reporting\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "reporting", cfg.Logger.ServiceName)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeEnvFile(t, "LOG_LEVEL=warn\nLOG_OUTPUT_PATH=/tmp/from-file.log\n")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logger.Level)
	assert.Equal(t, "/tmp/from-file.log", cfg.Logger.OutputPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			App: AppConfig{Env: "development"},
			Logger: LoggerConfig{
				Level:          "info",
				Format:         "json",
				OutputPath:     "stdout",
				ServiceName:    "user-query-service",
				ServiceVersion: "1.0.0",
			},
		}
	}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:     "unknown level",
			mutate:   func(c *Config) { c.Logger.Level = "verbose" },
			errorMsg: "Config.Logger.Level must be one of",
		},
		{
			name:     "unknown format",
			mutate:   func(c *Config) { c.Logger.Format = "xml" },
			errorMsg: "Config.Logger.Format must be one of",
		},
		{
			name:     "missing service name",
			mutate:   func(c *Config) { c.Logger.ServiceName = "" },
			errorMsg: "Config.Logger.ServiceName is required",
		},
		{
			name:     "missing env",
			mutate:   func(c *Config) { c.App.Env = "" },
			errorMsg: "Config.App.Env is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)

			var validationErr *apperrors.ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}
}
