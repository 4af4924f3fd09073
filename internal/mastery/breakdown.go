package mastery

import (
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/review"
)

// TopicBreakdown counts questions per display status within one topic.
type TopicBreakdown struct {
	Topic    bank.Topic
	Total    int
	ByStatus map[review.Status]int
}

// Breakdown returns per-topic status counts in topic order. Topics without
// a definition in the pool are still listed by id.
func Breakdown(pool *bank.Pool, m review.Map, today string) []TopicBreakdown {
	out := make([]TopicBreakdown, 0, len(bank.TopicIDs))
	for _, id := range bank.TopicIDs {
		tb := TopicBreakdown{
			Topic:    bank.Topic{ID: id, Name: pool.TopicName(id)},
			ByStatus: make(map[review.Status]int, len(review.AllStatuses)),
		}
		for _, q := range pool.ByTopic(id) {
			tb.Total++
			tb.ByStatus[review.StatusOf(q.ID, m, today)]++
		}
		out = append(out, tb)
	}
	return out
}

// DueCount returns how many pool questions are due today.
func DueCount(pool *bank.Pool, m review.Map, today string) int {
	n := 0
	for _, q := range pool.Questions() {
		if s := m[q.ID]; s != nil && review.IsDue(s.NextReviewAt, today, s.LastSeenAt) {
			n++
		}
	}
	return n
}
