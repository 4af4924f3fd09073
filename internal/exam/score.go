package exam

import "github.com/abhisek/repaso/internal/bank"

// TopicScore is the tally for one topic.
type TopicScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Score is the result of a finished exam.
type Score struct {
	Total   int
	Correct int
	Passed  bool
	ByTopic map[bank.TopicID]TopicScore
}

// ScoreExam tallies answers per topic. Every topic has an entry. Ids not in
// the pool count toward Total only; unanswered ids count as wrong.
func ScoreExam(ids []string, correct map[string]bool, pool *bank.Pool) Score {
	s := Score{
		Total:   len(ids),
		ByTopic: make(map[bank.TopicID]TopicScore, len(bank.TopicIDs)),
	}
	for _, id := range bank.TopicIDs {
		s.ByTopic[id] = TopicScore{}
	}

	for _, id := range ids {
		q, ok := pool.Question(id)
		if !ok {
			continue
		}
		ts := s.ByTopic[q.TopicID]
		ts.Total++
		if correct[id] {
			ts.Correct++
			s.Correct++
		}
		s.ByTopic[q.TopicID] = ts
	}
	s.Passed = s.Correct >= PassMark
	return s
}
