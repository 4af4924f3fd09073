// Package app is the process-wide state container. It owns the review map,
// settings, the active session, the adaptive session and exam history, and
// serializes every transition behind one mutex.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/repaso/internal/backup"
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/exam"
	"github.com/abhisek/repaso/internal/localdate"
	"github.com/abhisek/repaso/internal/logger"
	"github.com/abhisek/repaso/internal/mastery"
	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/session"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/store"
	"github.com/abhisek/repaso/internal/study"
)

var (
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrNotSeen          = errors.New("question has not been answered yet")
	ErrNoActiveSession  = errors.New("no active session")
	ErrAdaptiveInactive = errors.New("adaptive session is not active")
	ErrSessionExpired   = errors.New("session time is up")
)

// Clock returns the current time.
type Clock func() time.Time

// DefaultKeepSnapshots is how many snapshots survive each save.
const DefaultKeepSnapshots = 20

// Options configures New. Pool and Scheduler are required; the repos are
// optional and state stays in memory without them.
type Options struct {
	Pool      *bank.Pool
	Scheduler spacedrep.Scheduler
	Location  *time.Location
	Clock     Clock
	Logger    *logger.Logger

	Snapshots store.SnapshotRepo
	Exams     store.ExamRepo
	Events    store.EventRepo

	// DefaultSettings apply until settings are stored. Zero means
	// study.DefaultSettings.
	DefaultSettings study.Settings
	KeepSnapshots   int
}

// App holds all mutable learner state.
type App struct {
	mu sync.Mutex

	pool      *bank.Pool
	sched     spacedrep.Scheduler
	loc       *time.Location
	clock     Clock
	log       *logger.Logger
	snapshots store.SnapshotRepo
	exams     store.ExamRepo
	events    store.EventRepo
	keep      int

	defaults  study.Settings
	settings  study.Settings
	reviews   review.Map
	active    *session.Active
	adaptive  study.Adaptive
	history   []exam.Record
	createdAt time.Time
}

// New builds an App with empty state. Call Load to restore persisted state.
func New(opts Options) (*App, error) {
	if opts.Pool == nil {
		return nil, errors.New("app: question pool is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("app: scheduler is required")
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.DefaultSettings == (study.Settings{}) {
		opts.DefaultSettings = study.DefaultSettings()
	}
	if opts.KeepSnapshots == 0 {
		opts.KeepSnapshots = DefaultKeepSnapshots
	}

	return &App{
		pool:      opts.Pool,
		sched:     opts.Scheduler,
		loc:       opts.Location,
		clock:     opts.Clock,
		log:       opts.Logger.With("component", "app"),
		snapshots: opts.Snapshots,
		exams:     opts.Exams,
		events:    opts.Events,
		keep:      opts.KeepSnapshots,
		defaults:  opts.DefaultSettings,
		settings:  opts.DefaultSettings,
		reviews:   review.Map{},
		createdAt: opts.Clock(),
	}, nil
}

// Load restores the latest snapshot and the exam history. Without a
// snapshot the state stays empty.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.snapshots != nil {
		snap, err := a.snapshots.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			p, err := backup.Decode(snap.Data)
			if err != nil {
				a.log.Error("stored snapshot is unreadable", "snapshot", snap.ID, "error", err)
				return fmt.Errorf("decode snapshot %d: %w", snap.ID, err)
			}
			a.reviews = p.Progress
			a.settings = p.Settings
			if !p.CreatedAt.IsZero() {
				a.createdAt = p.CreatedAt
			}
			a.log.Info("state loaded", "snapshot", snap.ID, "questions", len(a.reviews))
		}
	}

	if a.exams != nil {
		rows, err := a.exams.Recent(ctx, exam.HistoryCap)
		if err != nil {
			return fmt.Errorf("load exam history: %w", err)
		}
		a.history = a.history[:0]
		for _, r := range rows {
			a.history = append(a.history, exam.RecordFromData(r))
		}
	}
	return nil
}

// Reset forgets all review state and ends any session. Settings and exam
// history are kept.
func (a *App) Reset(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.checkpoint()
	a.reviews = review.Map{}
	a.active = nil
	a.adaptive.Finish()
	a.log.Info("progress reset")
	return a.commit(ctx, prev)
}

// Pool returns the question pool.
func (a *App) Pool() *bank.Pool { return a.pool }

// Location returns the time zone that defines "today".
func (a *App) Location() *time.Location { return a.loc }

// Today returns the current local day.
func (a *App) Today() string {
	return localdate.Today(a.clock(), a.loc)
}

// Reviews returns a copy of the review map.
func (a *App) Reviews() review.Map {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reviews.Clone()
}

// Review returns a copy of one question's review state.
func (a *App) Review(id string) (review.State, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.reviews[id]
	if !ok || s == nil {
		return review.State{}, false
	}
	return *s, true
}

// Settings returns the current study settings.
func (a *App) Settings() study.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// SetSettings replaces the study settings.
func (a *App) SetSettings(ctx context.Context, s study.Settings) error {
	if _, ok := study.Presets[s.DefaultPreset]; !ok {
		return fmt.Errorf("set settings: unknown preset %q", s.DefaultPreset)
	}
	if s.FocusTopic != study.FocusAll && !s.FocusTopic.Topic().Valid() {
		return fmt.Errorf("set settings: invalid focus topic %d", s.FocusTopic)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.checkpoint()
	a.settings = s
	return a.commit(ctx, prev)
}

// ToggleManualWeak flips the manual-weak flag of a seen question and
// returns the new value.
func (a *App) ToggleManualWeak(ctx context.Context, id string) (bool, error) {
	if _, ok := a.pool.Question(id); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.checkpoint()
	if !review.ToggleManualWeak(a.reviews, id) {
		return false, fmt.Errorf("%w: %s", ErrNotSeen, id)
	}
	if err := a.commit(ctx, prev); err != nil {
		return prev.reviews[id].ManualWeak, err
	}
	return a.reviews[id].ManualWeak, nil
}

// Level summarizes coverage and mastery over the whole pool.
func (a *App) Level() mastery.Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return mastery.ComputeLevel(a.pool, a.reviews, a.Today())
}

// Breakdown returns per-topic status counts.
func (a *App) Breakdown() []mastery.TopicBreakdown {
	a.mu.Lock()
	defer a.mu.Unlock()
	return mastery.Breakdown(a.pool, a.reviews, a.Today())
}

// DueCount returns how many questions are due today.
func (a *App) DueCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return mastery.DueCount(a.pool, a.reviews, a.Today())
}

// checkpoint is the mutable state a failed save rolls back to.
type checkpoint struct {
	reviews  review.Map
	settings study.Settings
	active   *session.Active
	adaptive study.Adaptive
}

// checkpoint captures the current state. Callers hold a.mu.
func (a *App) checkpoint() checkpoint {
	return checkpoint{
		reviews:  a.reviews.Clone(),
		settings: a.settings,
		active:   a.active.Clone(),
		adaptive: cloneAdaptive(a.adaptive),
	}
}

// commit persists the current state, or puts back prev when the save
// fails. Callers hold a.mu.
func (a *App) commit(ctx context.Context, prev checkpoint) error {
	if err := a.persist(ctx); err != nil {
		a.reviews = prev.reviews
		a.settings = prev.settings
		a.active = prev.active
		a.adaptive = prev.adaptive
		a.log.Warn("state rolled back", "error", err)
		return err
	}
	return nil
}

// persist writes a snapshot of reviews and settings. Callers hold a.mu.
func (a *App) persist(ctx context.Context) error {
	if a.snapshots == nil {
		return nil
	}
	now := a.clock()
	p := backup.New(a.pool.Version(), a.settings, a.reviews, now)
	p.CreatedAt = a.createdAt
	data, err := backup.Encode(p)
	if err != nil {
		return err
	}

	if err := a.snapshots.Save(ctx, &store.Snapshot{Timestamp: now, Data: data}); err != nil {
		a.log.Error("snapshot save failed", "error", err)
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := a.snapshots.Prune(ctx, a.keep); err != nil {
		a.log.Warn("snapshot prune failed", "error", err)
	}
	return nil
}
