package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/repaso/internal/app"
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/study"
)

// Source feeds questions to a Model and scores the answers.
type Source interface {
	// Current returns the question to show with its header line, or false
	// when nothing is left.
	Current() (bank.Question, string, bool, error)

	// Answer scores letter as the reply to q.
	Answer(ctx context.Context, q bank.Question, letter string, confidence spacedrep.Outcome) (app.AnswerResult, error)

	// Advance moves past the answered question.
	Advance() error

	// Deadline returns when the run ends, if it is timed.
	Deadline() (time.Time, bool)
}

// SessionSource runs the app's active fixed-length session, untimed or
// timed.
type SessionSource struct {
	App *app.App
}

func (s SessionSource) Current() (bank.Question, string, bool, error) {
	active, ok := s.App.ActiveSession()
	if !ok {
		return bank.Question{}, "", false, app.ErrNoActiveSession
	}
	q, ok, err := s.App.CurrentQuestion()
	if err != nil || !ok {
		return bank.Question{}, "", false, err
	}
	header := fmt.Sprintf("%d/%d · %s", active.CurrentIndex+1, active.PlannedTotal, s.App.Pool().TopicName(q.TopicID))
	return q, header, true, nil
}

func (s SessionSource) Answer(ctx context.Context, q bank.Question, letter string, confidence spacedrep.Outcome) (app.AnswerResult, error) {
	return s.App.Answer(ctx, app.AnswerInput{QuestionID: q.ID, Chosen: letter, Confidence: confidence})
}

func (s SessionSource) Advance() error {
	return s.App.NextInSession()
}

func (s SessionSource) Deadline() (time.Time, bool) {
	active, ok := s.App.ActiveSession()
	if !ok {
		return time.Time{}, false
	}
	return active.Deadline()
}

// AdaptiveSource runs the app's adaptive session. It never ends on its own
// unless the scope runs dry.
type AdaptiveSource struct {
	App   *app.App
	Scope study.Scope
}

func (s AdaptiveSource) Current() (bank.Question, string, bool, error) {
	st := s.App.Adaptive()
	if !st.Active {
		return bank.Question{}, "", false, app.ErrAdaptiveInactive
	}
	if st.CurrentID == "" {
		return bank.Question{}, "", false, nil
	}
	q, ok := s.App.Pool().Question(st.CurrentID)
	if !ok {
		return bank.Question{}, "", false, fmt.Errorf("%w: %s", app.ErrUnknownQuestion, st.CurrentID)
	}
	header := fmt.Sprintf("%s · %d answered · %d correct", s.Scope, st.Answered, st.Correct)
	return q, header, true, nil
}

func (s AdaptiveSource) Answer(ctx context.Context, q bank.Question, letter string, confidence spacedrep.Outcome) (app.AnswerResult, error) {
	res, err := s.App.Answer(ctx, app.AnswerInput{QuestionID: q.ID, Chosen: letter, Confidence: confidence})
	if err != nil {
		return res, err
	}
	return res, s.App.RecordAdaptiveAnswer(q.ID, res.Correct)
}

func (s AdaptiveSource) Advance() error {
	_, _, err := s.App.NextAdaptive()
	return err
}

func (s AdaptiveSource) Deadline() (time.Time, bool) {
	return time.Time{}, false
}
