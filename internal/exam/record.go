package exam

import (
	"time"

	"github.com/abhisek/repaso/internal/bank"
)

// HistoryCap is how many exam records are kept.
const HistoryCap = 30

// Record is the persisted result of one exam.
type Record struct {
	SessionID    string                      `json:"sessionId"`
	Mode         Mode                        `json:"mode,omitempty"`
	FinishedAt   time.Time                   `json:"finishedAt"`
	Total        int                         `json:"total"`
	Correct      int                         `json:"totalCorrect"`
	Passed       bool                        `json:"apto"`
	ByTopic      map[bank.TopicID]TopicScore `json:"byTarea"`
	DurationSec  int                         `json:"durationSec"`
	TimeSpentSec int                         `json:"timeSpentSec"`
}

// NewRecord builds a record, clamping the time spent to [0, duration].
func NewRecord(sessionID string, mode Mode, finishedAt time.Time, score Score, duration, spent time.Duration) Record {
	spent = max(0, min(spent, duration))
	return Record{
		SessionID:    sessionID,
		Mode:         mode,
		FinishedAt:   finishedAt,
		Total:        score.Total,
		Correct:      score.Correct,
		Passed:       score.Passed,
		ByTopic:      score.ByTopic,
		DurationSec:  int(duration / time.Second),
		TimeSpentSec: int(spent / time.Second),
	}
}

// AppendHistory puts rec in front of history, newest first, capped at
// HistoryCap. A record whose session is already present is dropped and
// history is returned unchanged.
func AppendHistory(history []Record, rec Record) []Record {
	for _, r := range history {
		if r.SessionID == rec.SessionID {
			return history
		}
	}
	out := make([]Record, 0, min(len(history)+1, HistoryCap))
	out = append(out, rec)
	for _, r := range history {
		if len(out) == HistoryCap {
			break
		}
		out = append(out, r)
	}
	return out
}
