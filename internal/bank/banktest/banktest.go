// Package banktest builds small question pools for tests.
package banktest

import (
	"fmt"

	"github.com/abhisek/repaso/internal/bank"
)

// Quota mirrors the exam's per-topic question counts.
var Quota = map[bank.TopicID]int{1: 10, 2: 3, 3: 2, 4: 3, 5: 7}

// Topics returns the five topic definitions.
func Topics() []bank.Topic {
	topics := make([]bank.Topic, 0, len(bank.TopicIDs))
	for _, id := range bank.TopicIDs {
		topics = append(topics, bank.Topic{ID: id, Name: fmt.Sprintf("Tarea %d", id)})
	}
	return topics
}

// Question builds a four-option question (two options for topic 2) whose
// correct answer is "a".
func Question(topic bank.TopicID, n int) bank.Question {
	opts := []bank.Option{{Letter: "a", Text: "A"}, {Letter: "b", Text: "B"}, {Letter: "c", Text: "C"}, {Letter: "d", Text: "D"}}
	if topic == 2 {
		opts = []bank.Option{{Letter: "a", Text: "Verdadero"}, {Letter: "b", Text: "Falso"}}
	}
	return bank.Question{
		ID:      ID(topic, n),
		TopicID: topic,
		Prompt:  fmt.Sprintf("Q %d-%d", topic, n),
		Options: opts,
		Answer:  "a",
	}
}

// ID returns the id used for the n-th (1-based) question of a topic,
// e.g. "1001" or "5007".
func ID(topic bank.TopicID, n int) string {
	return fmt.Sprintf("%d%03d", topic, n)
}

// Pool returns a pool with counts[topic] questions per topic.
func Pool(counts map[bank.TopicID]int) *bank.Pool {
	var qs []bank.Question
	for _, id := range bank.TopicIDs {
		for i := 1; i <= counts[id]; i++ {
			qs = append(qs, Question(id, i))
		}
	}
	return bank.NewPool(bank.DatasetVersion, Topics(), qs)
}

// MinimumExamPool returns a pool with exactly the per-topic exam quota.
func MinimumExamPool() *bank.Pool {
	return Pool(Quota)
}

// TopicOf returns the topic encoded in a banktest id.
func TopicOf(id string) bank.TopicID {
	return bank.TopicID(id[0] - '0')
}
