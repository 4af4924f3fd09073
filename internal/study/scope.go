// Package study picks what to ask next. It holds the adaptive next-question
// selector, the fixed-size study session builder, and the state of an
// adaptive session.
package study

import (
	"fmt"

	"github.com/abhisek/repaso/internal/bank"
)

// Scope restricts selection to every question or to one topic. The zero
// value means every question.
type Scope struct {
	Topic bank.TopicID
}

// AllQuestions is the unrestricted scope.
func AllQuestions() Scope { return Scope{} }

// TopicScope restricts selection to one topic.
func TopicScope(id bank.TopicID) Scope { return Scope{Topic: id} }

// All reports whether the scope is unrestricted.
func (s Scope) All() bool { return s.Topic == 0 }

// Contains reports whether q is in scope.
func (s Scope) Contains(q bank.Question) bool {
	return s.All() || q.TopicID == s.Topic
}

// Questions returns the in-scope questions sorted by id.
func (s Scope) Questions(pool *bank.Pool) []bank.Question {
	if !s.All() {
		return pool.ByTopic(s.Topic)
	}
	out := make([]bank.Question, 0, pool.Len())
	for _, id := range pool.SortedIDs() {
		if q, ok := pool.Question(id); ok {
			out = append(out, q)
		}
	}
	return out
}

func (s Scope) String() string {
	if s.All() {
		return "all"
	}
	return fmt.Sprintf("tarea %d", s.Topic)
}
