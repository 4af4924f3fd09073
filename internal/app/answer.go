package app

import (
	"context"
	"fmt"

	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/store"
)

// AnswerInput is one answer to record.
type AnswerInput struct {
	QuestionID string
	Chosen     string
	// Confidence applies to correct answers: knew or guessed.
	Confidence spacedrep.Outcome
}

// AnswerResult reports how an answer was scored.
type AnswerResult struct {
	Correct bool
	Outcome spacedrep.Outcome
	Answer  string
	State   review.State
}

// Answer scores an answer, advances the question's review state and, when a
// session is running, records the result there. The new state is saved
// before Answer returns; when the save fails nothing changes. Answers to a
// timed session past its deadline are rejected with ErrSessionExpired.
func (a *App) Answer(ctx context.Context, in AnswerInput) (AnswerResult, error) {
	q, ok := a.pool.Question(in.QuestionID)
	if !ok {
		return AnswerResult{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, in.QuestionID)
	}
	confidence := in.Confidence
	if confidence == "" {
		confidence = spacedrep.OutcomeKnew
	}
	if confidence != spacedrep.OutcomeKnew && confidence != spacedrep.OutcomeGuessed {
		return AnswerResult{}, fmt.Errorf("invalid confidence %q", in.Confidence)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.clock()
	if a.active != nil && a.active.Expired(now) {
		a.log.Info("late answer discarded", "session", a.active.ID, "question", q.ID)
		return AnswerResult{}, ErrSessionExpired
	}

	correct := in.Chosen == q.Answer
	outcome := spacedrep.OutcomeFor(correct, confidence)

	prev := a.checkpoint()
	next := review.Apply(a.reviews[q.ID], a.sched, now, a.loc, outcome)
	a.reviews[q.ID] = next

	var sessionID string
	if a.active != nil {
		a.active.RecordResult(q.ID, correct)
		sessionID = a.active.ID
	}
	if err := a.commit(ctx, prev); err != nil {
		return AnswerResult{}, err
	}

	if a.events != nil {
		err := a.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			Timestamp:  now,
			SessionID:  sessionID,
			QuestionID: q.ID,
			TopicID:    int(q.TopicID),
			Chosen:     in.Chosen,
			Outcome:    string(outcome),
			Correct:    correct,
		})
		if err != nil {
			a.log.Warn("answer event not recorded", "question", q.ID, "error", err)
		}
	}

	a.log.Debug("answer recorded", "question", q.ID, "outcome", outcome, "next_review", next.NextReviewAt)
	return AnswerResult{Correct: correct, Outcome: outcome, Answer: q.Answer, State: *next}, nil
}
