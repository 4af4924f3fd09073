package exam

import (
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/store"
)

// ToData converts r for storage.
func (r Record) ToData() store.ExamResultData {
	byTopic := make(map[int]store.TopicTally, len(r.ByTopic))
	for id, ts := range r.ByTopic {
		byTopic[int(id)] = store.TopicTally{Correct: ts.Correct, Total: ts.Total}
	}
	return store.ExamResultData{
		SessionID:    r.SessionID,
		FinishedAt:   r.FinishedAt,
		Mode:         string(r.Mode),
		Total:        r.Total,
		Correct:      r.Correct,
		Passed:       r.Passed,
		DurationSec:  r.DurationSec,
		TimeSpentSec: r.TimeSpentSec,
		ByTopic:      byTopic,
	}
}

// RecordFromData converts a stored result back into a Record.
func RecordFromData(d store.ExamResultData) Record {
	byTopic := make(map[bank.TopicID]TopicScore, len(d.ByTopic))
	for id, tt := range d.ByTopic {
		byTopic[bank.TopicID(id)] = TopicScore{Correct: tt.Correct, Total: tt.Total}
	}
	return Record{
		SessionID:    d.SessionID,
		Mode:         Mode(d.Mode),
		FinishedAt:   d.FinishedAt,
		Total:        d.Total,
		Correct:      d.Correct,
		Passed:       d.Passed,
		ByTopic:      byTopic,
		DurationSec:  d.DurationSec,
		TimeSpentSec: d.TimeSpentSec,
	}
}
