package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repaso/internal/app"
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/config"
	"github.com/abhisek/repaso/internal/logger"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/store"
	"github.com/abhisek/repaso/internal/study"
)

var errNoDataset = errors.New("no question bank configured: pass --dataset or set REPASO_DATASET")

// deps bundles what an interactive command needs.
type deps struct {
	cfg   config.Config
	log   *logger.Logger
	store *store.Store
	app   *app.App
}

// loadConfig reads the config and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("dataset"); p != "" {
		cfg.DatasetPath = p
	}
	return cfg, nil
}

// loadPool reads the question bank and refuses one with problems.
func loadPool(path string) (*bank.Pool, error) {
	if path == "" {
		return nil, errNoDataset
	}
	pool, problems, err := bank.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("question bank %s has %d problems; run 'repaso validate' for details", path, len(problems))
	}
	return pool, nil
}

// resolveDBPath returns the database path from config or the default
// location, creating its directory.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openDeps loads config and the question bank, opens the store and
// restores the saved state.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	pool, err := loadPool(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a, err := app.New(app.Options{
		Pool:            pool,
		Scheduler:       spacedrep.NewFSRS(cfg.Scheduler()),
		Location:        loc,
		Logger:          log,
		Snapshots:       st.SnapshotRepo(),
		Exams:           st.ExamRepo(),
		Events:          st.EventRepo(),
		DefaultSettings: cfg.DefaultSettings(),
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	if err := a.Load(cmd.Context()); err != nil {
		st.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}
	log.Debug("runtime ready", "db", dbPath, "questions", pool.Len())

	return &deps{cfg: cfg, log: log, store: st, app: a}, nil
}

func (d *deps) Close() {
	if err := d.store.Close(); err != nil {
		d.log.Warn("close store", "error", err)
	}
	d.log.Sync()
}

// scopeFlag reads --topic into a scope. 0 means every topic.
func scopeFlag(cmd *cobra.Command) (study.Scope, error) {
	topic, _ := cmd.Flags().GetInt("topic")
	if topic == 0 {
		return study.AllQuestions(), nil
	}
	if !bank.TopicID(topic).Valid() {
		return study.Scope{}, fmt.Errorf("invalid --topic %d: must be 1 to 5", topic)
	}
	return study.TopicScope(bank.TopicID(topic)), nil
}
