package store

import (
	"context"
	"encoding/json"
	"time"
)

// Snapshot is a point-in-time capture of learner state. Data is an opaque
// JSON document owned by the caller.
type Snapshot struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	Data      json.RawMessage
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot and fills in its ID and Sequence.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// TopicTally is a per-topic correct/total pair.
type TopicTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ExamResultData is one finished exam.
type ExamResultData struct {
	SessionID    string
	FinishedAt   time.Time
	Mode         string
	Total        int
	Correct      int
	Passed       bool
	DurationSec  int
	TimeSpentSec int
	ByTopic      map[int]TopicTally
}

// ExamRepo stores exam results.
type ExamRepo interface {
	// SaveResult stores a result. A result for an already stored session
	// is ignored.
	SaveResult(ctx context.Context, data ExamResultData) error

	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]ExamResultData, error)

	// Prune deletes all but the keep newest results.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData is one answered question.
type AnswerEventData struct {
	Timestamp  time.Time
	SessionID  string
	QuestionID string
	TopicID    int
	Chosen     string
	Outcome    string
	Correct    bool
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	Sequence int64
	AnswerEventData
}

// EventRepo is the append-only answer log.
type EventRepo interface {
	// AppendAnswerEvent records one answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// TopicAccuracy returns the share of correct answers for a topic and
	// the number of answers it is based on. It is 0 with no answers.
	TopicAccuracy(ctx context.Context, topicID int) (float64, int, error)

	// AnswerCount returns the number of logged answers.
	AnswerCount(ctx context.Context) (int, error)

	// RecentAnswers returns up to limit answers, newest first.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerEventRecord, error)
}
