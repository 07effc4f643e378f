package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DRILLBOOK_LOG_LEVEL", "")
	t.Setenv("DRILLBOOK_OUTPUT", "")
	t.Setenv("DRILLBOOK_DEBUG", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, OutputText, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrency)
	assert.Equal(t, "warn", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = OutputJSON
	cfg.Batch.MaxConcurrency = 9
	cfg.Logging.Categories = map[string]bool{"headers": false}

	require.NoError(t, cfg.Save(path, false))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrency)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DRILLBOOK_LOG_LEVEL", "DEBUG")
	t.Setenv("DRILLBOOK_OUTPUT", "JSON")
	t.Setenv("DRILLBOOK_DEBUG", "true")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
	assert.True(t, cfg.Logging.DebugMode)
}

func TestConfig_EnvOverrides_IgnoresBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("DRILLBOOK_DEBUG", "maybe")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.False(t, cfg.Logging.DebugMode)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))

	cfg = DefaultConfig()
	cfg.Batch.MaxConcurrency = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Output.Indent = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestLoggingConfig_ValidateIgnoresDebugOverride(t *testing.T) {
	c := LoggingConfig{Level: "loud", DebugMode: true}
	assert.Error(t, c.Validate())

	c = LoggingConfig{DebugMode: true}
	assert.NoError(t, c.Validate())

	c = LoggingConfig{Level: "warning"}
	assert.NoError(t, c.Validate())
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	c := LoggingConfig{}
	assert.True(t, c.IsCategoryEnabled("headers"))

	c.Categories = map[string]bool{"headers": false, "arrays": true}
	assert.False(t, c.IsCategoryEnabled("headers"))
	assert.True(t, c.IsCategoryEnabled("arrays"))
	assert.True(t, c.IsCategoryEnabled("penalty"))
}

func TestLoggingConfig_EffectiveLevel(t *testing.T) {
	c := LoggingConfig{Level: "error"}
	assert.Equal(t, "error", c.EffectiveLevel())

	c.DebugMode = true
	assert.Equal(t, "debug", c.EffectiveLevel())

	assert.Equal(t, "warn", (&LoggingConfig{}).EffectiveLevel())
}

func TestConfig_SaveRefusesToOverwrite(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path, false))

	changed := DefaultConfig()
	changed.Output.Format = OutputYAML

	err := changed.Save(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigExists))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputText, loaded.Output.Format)

	require.NoError(t, changed.Save(path, true))
	loaded, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, loaded.Output.Format)
}

func TestConfig_SaveUsesTwoSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output:\n  format: text\n")
}
