package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/repaso/ent"
	"github.com/abhisek/repaso/ent/answerevent"
)

// sequenceCounter hands out the global monotonic sequence shared by answer
// events and snapshots, so a snapshot can be placed relative to the answers
// it includes.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ts).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetTopicID(data.TopicID).
		SetChosen(data.Chosen).
		SetOutcome(data.Outcome).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topicID int) (float64, int, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicID(topicID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count topic answers: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicID(topicID), answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct topic answers: %w", err)
	}
	return float64(correct) / float64(total), total, nil
}

func (r *eventRepo) AnswerCount(ctx context.Context) (int, error) {
	n, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answer events: %w", err)
	}
	return n, nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerEventRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	out := make([]AnswerEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, AnswerEventRecord{
			Sequence: e.Sequence,
			AnswerEventData: AnswerEventData{
				Timestamp:  e.Timestamp.UTC(),
				SessionID:  e.SessionID,
				QuestionID: e.QuestionID,
				TopicID:    e.TopicID,
				Chosen:     e.Chosen,
				Outcome:    e.Outcome,
				Correct:    e.Correct,
			},
		})
	}
	return out, nil
}
