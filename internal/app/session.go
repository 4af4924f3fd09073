package app

import (
	"context"
	"fmt"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/exam"
	"github.com/abhisek/repaso/internal/session"
	"github.com/abhisek/repaso/internal/study"
)

// StartSession replaces any running session with a new one over ids.
func (a *App) StartSession(kind session.Kind, ids []string, opts ...session.Option) *session.Active {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.start(kind, ids, opts...)
}

// start installs a new session. Callers hold a.mu.
func (a *App) start(kind session.Kind, ids []string, opts ...session.Option) *session.Active {
	a.active = session.New(kind, ids, opts...)
	a.log.Info("session started", "session", a.active.ID, "kind", kind, "questions", len(ids))
	return a.active.Clone()
}

// StartStudy builds and starts a study session of size questions using the
// stored focus settings. A size of 0 uses the default preset.
func (a *App) StartStudy(size int) (*session.Active, study.Breakdown) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.settings
	return a.startStudy(size, s.FocusTopic.Topic(), s.OnlyFocus)
}

// StartFocused is StartStudy with an explicit focus topic (0 for none)
// instead of the stored one.
func (a *App) StartFocused(size int, focus bank.TopicID, onlyFocus bool) (*session.Active, study.Breakdown) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.startStudy(size, focus, onlyFocus)
}

func (a *App) startStudy(size int, focus bank.TopicID, onlyFocus bool) (*session.Active, study.Breakdown) {
	if size <= 0 {
		size = a.settings.DefaultPreset.Size()
	}
	built := study.BuildSession(a.pool, a.reviews, a.Today(), size, focus, onlyFocus)
	return a.start(session.KindStudy, built.IDs), built.Breakdown
}

// WeakIDs lists the weak questions in scope.
func (a *App) WeakIDs(scope study.Scope) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return study.WeakIDs(a.pool, a.reviews, a.Today(), scope)
}

// StartTargeted starts a session over the weak questions in scope. It
// returns ErrNoActiveSession when there is nothing to review.
func (a *App) StartTargeted(scope study.Scope) (*session.Active, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := study.WeakIDs(a.pool, a.reviews, a.Today(), scope)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no weak questions in %s", ErrNoActiveSession, scope)
	}
	return a.start(session.KindTargeted, ids), nil
}

// StartSimulacro builds an exam and starts it as a timed session.
func (a *App) StartSimulacro(mode exam.Mode, rng exam.Shuffler) (*session.Active, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids, err := exam.Build(a.pool, a.reviews, a.Today(), mode, rng)
	if err != nil {
		return nil, fmt.Errorf("build exam: %w", err)
	}
	return a.start(session.KindSimulacro, ids, session.WithTimer(a.clock(), exam.DefaultDuration)), nil
}

// ActiveSession returns a copy of the running session.
func (a *App) ActiveSession() (*session.Active, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return nil, false
	}
	return a.active.Clone(), true
}

// CurrentQuestion returns the question at the session's current position.
func (a *App) CurrentQuestion() (bank.Question, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return bank.Question{}, false, ErrNoActiveSession
	}
	id, ok := a.active.Current()
	if !ok {
		return bank.Question{}, false, nil
	}
	q, ok := a.pool.Question(id)
	if !ok {
		return bank.Question{}, false, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return q, true, nil
}

// NextInSession moves past the current question, requeueing it when it was
// answered wrong and the settings ask for it. Simulacros never requeue.
func (a *App) NextInSession() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return ErrNoActiveSession
	}
	requeue := a.settings.RequeueWrong && a.active.Kind != session.KindSimulacro
	a.active.Advance(requeue)
	return nil
}

// FinishSession ends the running session and returns its tally.
func (a *App) FinishSession() (session.Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return session.Summary{}, ErrNoActiveSession
	}
	sum := a.active.Summarize()
	a.log.Info("session finished", "session", a.active.ID, "answered", sum.Answered, "correct", sum.Correct)
	a.active = nil
	return sum, nil
}

// FinishSimulacro scores the running simulacro, records the result and ends
// the session.
func (a *App) FinishSimulacro(ctx context.Context, mode exam.Mode) (exam.Record, error) {
	a.mu.Lock()
	active := a.active
	if active == nil || active.Kind != session.KindSimulacro {
		a.mu.Unlock()
		return exam.Record{}, fmt.Errorf("%w: no simulacro running", ErrNoActiveSession)
	}
	now := a.clock()
	score := exam.ScoreExam(active.IDs, active.CorrectBy, a.pool)
	rec := exam.NewRecord(active.ID, mode, now, score, active.Duration, active.TimeSpent(now))
	a.active = nil
	a.mu.Unlock()

	return rec, a.RecordExamResult(ctx, rec)
}

// History returns the exam history, newest first.
func (a *App) History() []exam.Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]exam.Record, len(a.history))
	copy(out, a.history)
	return out
}

// RecordExamResult adds rec to the history. A result for a session that is
// already recorded is ignored.
func (a *App) RecordExamResult(ctx context.Context, rec exam.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, r := range a.history {
		if r.SessionID == rec.SessionID {
			return nil
		}
	}
	a.history = exam.AppendHistory(a.history, rec)
	a.log.Info("exam recorded", "session", rec.SessionID, "correct", rec.Correct, "passed", rec.Passed)

	if a.exams == nil {
		return nil
	}
	if err := a.exams.SaveResult(ctx, rec.ToData()); err != nil {
		return fmt.Errorf("save exam result: %w", err)
	}
	if err := a.exams.Prune(ctx, exam.HistoryCap); err != nil {
		a.log.Warn("exam prune failed", "error", err)
	}
	return nil
}
