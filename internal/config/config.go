// Package config loads repaso settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Embedded zone database so the default time zone resolves everywhere.
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/repaso/internal/logger"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/study"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// DatasetPath is the question dump. Commands that need questions fail
	// when it is empty.
	DatasetPath string `yaml:"dataset_path"`

	// Timezone names the IANA zone that defines "today". Default: Europe/Madrid.
	Timezone string `yaml:"timezone"`

	LogMode string `yaml:"log_mode"`
	LogFile string `yaml:"log_file"`

	FSRS  FSRSConfig  `yaml:"fsrs"`
	Study StudyConfig `yaml:"study"`
}

// FSRSConfig holds scheduler parameters.
type FSRSConfig struct {
	RequestRetention float64 `yaml:"request_retention"`
	MaximumInterval  float64 `yaml:"maximum_interval"`
	EnableFuzz       bool    `yaml:"enable_fuzz"`
}

// StudyConfig holds defaults applied when no settings are stored yet.
type StudyConfig struct {
	DefaultPreset string `yaml:"default_preset"`
	RequeueWrong  bool   `yaml:"requeue_wrong"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timezone: "Europe/Madrid",
		LogMode:  logger.ModeQuiet,
		FSRS: FSRSConfig{
			RequestRetention: 0.9,
			MaximumInterval:  36500,
			EnableFuzz:       false,
		},
		Study: StudyConfig{
			DefaultPreset: string(study.PresetMedium),
			RequeueWrong:  true,
		},
	}
}

// Load builds the effective config: defaults, then the YAML file at path
// (or $REPASO_CONFIG, or the default location if it exists), then the
// environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("REPASO_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/repaso/config.yaml, falling back to
// ~/.config. It is empty when no home directory can be found.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "repaso", "config.yaml")
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("REPASO_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("REPASO_DATASET"); v != "" {
		c.DatasetPath = v
	}
	if v := os.Getenv("REPASO_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("REPASO_LOG"); v != "" {
		c.LogMode = v
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.LogMode {
	case logger.ModeDev, logger.ModeProd, logger.ModeQuiet, logger.ModeOff:
	default:
		return fmt.Errorf("log_mode %q must be one of dev, prod, quiet, off", c.LogMode)
	}
	if r := c.FSRS.RequestRetention; r <= 0 || r >= 1 {
		return fmt.Errorf("fsrs.request_retention must be in (0, 1), got %v", r)
	}
	if c.FSRS.MaximumInterval < 1 {
		return fmt.Errorf("fsrs.maximum_interval must be at least 1 day, got %v", c.FSRS.MaximumInterval)
	}
	if _, err := study.ParsePreset(c.Study.DefaultPreset); err != nil {
		return fmt.Errorf("study.default_preset: %w", err)
	}
	return nil
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Scheduler returns the scheduler parameters.
func (c Config) Scheduler() spacedrep.Config {
	return spacedrep.Config{
		RequestRetention: c.FSRS.RequestRetention,
		MaximumInterval:  c.FSRS.MaximumInterval,
		EnableFuzz:       c.FSRS.EnableFuzz,
	}
}

// DefaultSettings returns the study settings used before any are stored.
func (c Config) DefaultSettings() study.Settings {
	s := study.DefaultSettings()
	if p, err := study.ParsePreset(c.Study.DefaultPreset); err == nil {
		s.DefaultPreset = p
	}
	s.RequeueWrong = c.Study.RequeueWrong
	return s
}
