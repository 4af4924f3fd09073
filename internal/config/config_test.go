package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/study"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REPASO_CONFIG", "REPASO_DB", "REPASO_DATASET", "REPASO_TZ", "REPASO_LOG"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Europe/Madrid", cfg.Timezone)
	assert.Equal(t, 0.9, cfg.FSRS.RequestRetention)
	assert.False(t, cfg.FSRS.EnableFuzz)
	assert.Equal(t, study.DefaultSettings(), cfg.DefaultSettings())
}

func TestLoad_NoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
timezone: UTC
dataset_path: /data/ccse.json
fsrs:
  request_retention: 0.85
study:
  default_preset: long
  requeue_wrong: false
`), 0o644))

	t.Setenv("REPASO_DATASET", "/env/ccse.json")
	t.Setenv("REPASO_LOG", "off")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "/env/ccse.json", cfg.DatasetPath)
	assert.Equal(t, "off", cfg.LogMode)
	assert.Equal(t, 0.85, cfg.FSRS.RequestRetention)
	assert.Equal(t, 36500.0, cfg.FSRS.MaximumInterval, "unset keys keep defaults")

	s := cfg.DefaultSettings()
	assert.Equal(t, study.PresetLong, s.DefaultPreset)
	assert.False(t, s.RequeueWrong)

	sc := cfg.Scheduler()
	assert.Equal(t, 0.85, sc.RequestRetention)
}

func TestLoad_ConfigEnvVar(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/x.db\n"), 0o644))
	t.Setenv("REPASO_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"bad log mode", func(c *Config) { c.LogMode = "loud" }},
		{"retention too high", func(c *Config) { c.FSRS.RequestRetention = 1 }},
		{"retention zero", func(c *Config) { c.FSRS.RequestRetention = 0 }},
		{"max interval", func(c *Config) { c.FSRS.MaximumInterval = 0 }},
		{"preset", func(c *Config) { c.Study.DefaultPreset = "huge" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
