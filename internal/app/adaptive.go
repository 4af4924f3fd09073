package app

import (
	"slices"

	"github.com/abhisek/repaso/internal/study"
)

// StartAdaptive begins an adaptive session and returns its first question.
// It returns false when the scope is empty.
func (a *App) StartAdaptive(scope study.Scope, priority []string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id, ok := a.adaptive.Start(a.pool, a.reviews, a.Today(), scope, priority)
	a.log.Info("adaptive session started", "scope", scope.String(), "priority", len(priority))
	return id, ok
}

// RecordAdaptiveAnswer tallies an answer in the adaptive session. The
// review state itself is updated by Answer.
func (a *App) RecordAdaptiveAnswer(id string, correct bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.adaptive.Active {
		return ErrAdaptiveInactive
	}
	a.adaptive.Record(id, correct)
	return nil
}

// NextAdaptive selects the next question of the adaptive session.
func (a *App) NextAdaptive() (string, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.adaptive.Active {
		return "", false, ErrAdaptiveInactive
	}
	id, ok := a.adaptive.Advance(a.pool, a.reviews, a.Today())
	return id, ok, nil
}

// Adaptive returns a copy of the adaptive session state.
func (a *App) Adaptive() study.Adaptive {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneAdaptive(a.adaptive)
}

// FinishAdaptive ends the adaptive session and returns its final state.
func (a *App) FinishAdaptive() (study.Adaptive, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.adaptive.Active {
		return study.Adaptive{}, ErrAdaptiveInactive
	}
	final := cloneAdaptive(a.adaptive)
	a.adaptive.Finish()
	a.log.Info("adaptive session finished", "answered", final.Answered, "correct", final.Correct)
	return final, nil
}

func cloneAdaptive(s study.Adaptive) study.Adaptive {
	s.Priority = slices.Clone(s.Priority)
	s.Recent = slices.Clone(s.Recent)
	return s
}
