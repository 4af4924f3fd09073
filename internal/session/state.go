// Package session holds the active question session: its planned sequence,
// per-question results and the wrong-answer requeue.
package session

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Kind is the purpose of a session.
type Kind string

const (
	KindStudy     Kind = "study"
	KindSimulacro Kind = "simulacro"
	KindTargeted  Kind = "targeted"
)

// RequeueOffset is how many positions after the current one a wrong answer
// is reinserted.
const RequeueOffset = 6

// Active is the one running session.
type Active struct {
	// ID is a random uuid assigned at creation.
	ID   string
	Kind Kind

	// IDs is the question sequence. It never grows past PlannedTotal.
	IDs          []string
	PlannedTotal int
	CurrentIndex int

	// WrongIDs holds each wrongly answered id once, in answer order.
	WrongIDs  []string
	CorrectBy map[string]bool

	// StartedAt and Duration are set for timed sessions only.
	StartedAt time.Time
	Duration  time.Duration
}

// Option configures a new session.
type Option func(*Active)

// WithTimer makes the session timed.
func WithTimer(startedAt time.Time, d time.Duration) Option {
	return func(a *Active) {
		a.StartedAt = startedAt
		a.Duration = d
	}
}

// New starts a session over ids.
func New(kind Kind, ids []string, opts ...Option) *Active {
	a := &Active{
		ID:           uuid.NewString(),
		Kind:         kind,
		IDs:          slices.Clone(ids),
		PlannedTotal: len(ids),
		CorrectBy:    make(map[string]bool, len(ids)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Clone returns a deep copy of a.
func (a *Active) Clone() *Active {
	if a == nil {
		return nil
	}
	cp := *a
	cp.IDs = slices.Clone(a.IDs)
	cp.WrongIDs = slices.Clone(a.WrongIDs)
	cp.CorrectBy = make(map[string]bool, len(a.CorrectBy))
	for id, ok := range a.CorrectBy {
		cp.CorrectBy[id] = ok
	}
	return &cp
}
