// Package review holds the per-question review record and the predicates
// that classify a question as due, weak, mastered, learning or new.
package review

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/repaso/internal/localdate"
	"github.com/abhisek/repaso/internal/spacedrep"
)

// State is the review record for one question. It exists only once the
// question has been answered at least once.
type State struct {
	Card         spacedrep.MemoryState `json:"card"`
	NextReviewAt string                `json:"nextReviewAt"`
	SeenCount    int                   `json:"seenCount"`
	CorrectCount int                   `json:"correctCount"`
	WrongCount   int                   `json:"wrongCount"`
	LastSeenAt   string                `json:"lastSeenAt,omitempty"`
	LastWrongAt  string                `json:"lastWrongAt,omitempty"`
	LastResult   spacedrep.Outcome     `json:"lastResult,omitempty"`
	LeechScore   int                   `json:"leechScore"`
	ManualWeak   bool                  `json:"manualWeak,omitempty"`
}

// Map holds review states by question id. A missing entry means "never seen".
type Map map[string]*State

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, s := range m {
		if s == nil {
			continue
		}
		cp := *s
		out[id] = &cp
	}
	return out
}

// ApplyLeechDelta returns the leech score after one answer: +2 for wrong,
// +1 for guessed, -1 for knew, never below zero.
func ApplyLeechDelta(current int, o spacedrep.Outcome) int {
	switch o {
	case spacedrep.OutcomeWrong:
		return current + 2
	case spacedrep.OutcomeGuessed:
		return current + 1
	default:
		return max(0, current-1)
	}
}

// Apply returns the review state that follows prev after one answer with
// the given outcome at now. prev may be nil for a first answer; it is never
// modified.
func Apply(prev *State, sched spacedrep.Scheduler, now time.Time, loc *time.Location, o spacedrep.Outcome) *State {
	var base State
	var priorCard *spacedrep.MemoryState
	if prev != nil {
		base = *prev
		card := prev.Card
		priorCard = &card
	}

	card, nextReview := spacedrep.Next(sched, priorCard, now, loc, o)
	today := localdate.Format(now, loc)

	next := &State{
		Card:         card,
		NextReviewAt: nextReview,
		SeenCount:    base.SeenCount + 1,
		CorrectCount: base.CorrectCount,
		WrongCount:   base.WrongCount,
		LastSeenAt:   today,
		LastWrongAt:  base.LastWrongAt,
		LastResult:   o,
		LeechScore:   ApplyLeechDelta(base.LeechScore, o),
		ManualWeak:   base.ManualWeak,
	}
	if o == spacedrep.OutcomeWrong {
		next.WrongCount++
		next.LastWrongAt = today
	} else {
		next.CorrectCount++
	}
	return next
}

// ToggleManualWeak flips the manual-weak flag for id. It returns false when
// the question has no review state yet.
func ToggleManualWeak(m Map, id string) bool {
	s, ok := m[id]
	if !ok || s == nil {
		return false
	}
	cp := *s
	cp.ManualWeak = !cp.ManualWeak
	m[id] = &cp
	return true
}

// Validate checks the invariants of an externally supplied state.
func Validate(s *State) error {
	if s == nil {
		return errors.New("missing state")
	}
	if s.SeenCount < 0 || s.CorrectCount < 0 || s.WrongCount < 0 {
		return errors.New("counters must be non-negative")
	}
	if s.LeechScore < 0 {
		return errors.New("leechScore must be non-negative")
	}
	if !localdate.Valid(s.NextReviewAt) {
		return fmt.Errorf("invalid nextReviewAt %q", s.NextReviewAt)
	}
	if s.LastSeenAt != "" && !localdate.Valid(s.LastSeenAt) {
		return fmt.Errorf("invalid lastSeenAt %q", s.LastSeenAt)
	}
	if s.LastWrongAt != "" && !localdate.Valid(s.LastWrongAt) {
		return fmt.Errorf("invalid lastWrongAt %q", s.LastWrongAt)
	}
	if s.LastResult != "" && !s.LastResult.Valid() {
		return fmt.Errorf("invalid lastResult %q", s.LastResult)
	}
	return nil
}
