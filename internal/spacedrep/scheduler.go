package spacedrep

import (
	"time"

	fsrs "github.com/open-spaced-repetition/go-fsrs/v3"

	"github.com/abhisek/repaso/internal/localdate"
)

// Scheduler advances a memory state after one graded review.
// A nil prior means the question has never been reviewed.
type Scheduler interface {
	Advance(prior *MemoryState, now time.Time, grade Grade) MemoryState
}

// Config holds the FSRS parameters exposed through configuration.
type Config struct {
	RequestRetention float64
	MaximumInterval  float64
	EnableFuzz       bool
}

// DefaultConfig returns the FSRS library defaults with fuzz disabled so
// schedules are reproducible.
func DefaultConfig() Config {
	p := fsrs.DefaultParam()
	return Config{
		RequestRetention: p.RequestRetention,
		MaximumInterval:  p.MaximumInterval,
		EnableFuzz:       false,
	}
}

// FSRS is a Scheduler backed by go-fsrs.
type FSRS struct {
	f *fsrs.FSRS
}

// NewFSRS builds an FSRS scheduler from cfg. Zero fields keep library defaults.
func NewFSRS(cfg Config) *FSRS {
	p := fsrs.DefaultParam()
	if cfg.RequestRetention > 0 && cfg.RequestRetention < 1 {
		p.RequestRetention = cfg.RequestRetention
	}
	if cfg.MaximumInterval > 0 {
		p.MaximumInterval = cfg.MaximumInterval
	}
	p.EnableFuzz = cfg.EnableFuzz
	return &FSRS{f: fsrs.NewFSRS(p)}
}

// Advance implements Scheduler.
func (s *FSRS) Advance(prior *MemoryState, now time.Time, grade Grade) MemoryState {
	base := NewMemoryState(now)
	if prior != nil {
		base = *prior
	}
	info := s.f.Repeat(toCard(base), now)[toRating(grade)]
	return fromCard(info.Card)
}

// Next advances prior with the grade for outcome and returns the new state
// together with its next-review day in loc.
func Next(s Scheduler, prior *MemoryState, now time.Time, loc *time.Location, outcome Outcome) (MemoryState, string) {
	next := s.Advance(prior, now, GradeFromOutcome(outcome))
	return next, localdate.Format(next.Due, loc)
}

func toRating(g Grade) fsrs.Rating {
	switch g {
	case GradeAgain:
		return fsrs.Again
	case GradeHard:
		return fsrs.Hard
	default:
		return fsrs.Good
	}
}

func toCard(m MemoryState) fsrs.Card {
	return fsrs.Card{
		Due:           m.Due,
		Stability:     m.Stability,
		Difficulty:    m.Difficulty,
		ElapsedDays:   uint64(max(0, m.ElapsedDays)),
		ScheduledDays: uint64(max(0, m.ScheduledDays)),
		Reps:          uint64(max(0, m.Reps)),
		Lapses:        uint64(max(0, m.Lapses)),
		State:         fsrs.State(m.State),
		LastReview:    m.LastReview,
	}
}

func fromCard(c fsrs.Card) MemoryState {
	return MemoryState{
		Due:           c.Due,
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   int(c.ElapsedDays),
		ScheduledDays: int(c.ScheduledDays),
		Reps:          int(c.Reps),
		Lapses:        int(c.Lapses),
		State:         CardState(c.State),
		LastReview:    c.LastReview,
	}
}
