package bank

import (
	"slices"
	"strings"
)

// Pool is the loaded question bank. It is never mutated after NewPool and is
// safe to share between readers.
type Pool struct {
	version   string
	topics    []Topic
	questions []Question
	byID      map[string]int
	byTopic   map[TopicID][]Question
}

// NewPool builds a pool from topics and questions, inferring missing
// question types. Questions with a duplicate id keep their first occurrence
// in the id index; Validate reports the duplicate.
func NewPool(version string, topics []Topic, questions []Question) *Pool {
	p := &Pool{
		version:   version,
		topics:    slices.Clone(topics),
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		byTopic:   make(map[TopicID][]Question),
	}

	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		if q.Type == "" {
			q.Type = inferType(q)
		}
		p.questions[i] = q
		if _, exists := p.byID[q.ID]; !exists {
			p.byID[q.ID] = i
		}
	}

	for _, q := range p.questions {
		p.byTopic[q.TopicID] = append(p.byTopic[q.TopicID], q)
	}
	for id := range p.byTopic {
		sortByID(p.byTopic[id])
	}
	slices.SortFunc(p.topics, func(a, b Topic) int { return int(a.ID) - int(b.ID) })

	return p
}

// Version returns the dataset version tag.
func (p *Pool) Version() string { return p.version }

// Len returns the number of questions.
func (p *Pool) Len() int { return len(p.questions) }

// Topics returns the topic definitions sorted by id.
func (p *Pool) Topics() []Topic { return slices.Clone(p.topics) }

// Questions returns all questions in load order.
func (p *Pool) Questions() []Question { return cloneAll(p.questions) }

// Question looks up a question by id.
func (p *Pool) Question(id string) (Question, bool) {
	i, ok := p.byID[id]
	if !ok {
		return Question{}, false
	}
	return p.questions[i].clone(), true
}

// ByTopic returns the questions of one topic sorted by id.
func (p *Pool) ByTopic(id TopicID) []Question {
	return cloneAll(p.byTopic[id])
}

// TopicName returns the display name for a topic, or "" if undefined.
func (p *Pool) TopicName(id TopicID) string {
	for _, t := range p.topics {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}

// SortedIDs returns every question id in lexicographic order.
func (p *Pool) SortedIDs() []string {
	ids := make([]string, 0, len(p.questions))
	for _, q := range p.questions {
		ids = append(ids, q.ID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// clone returns q with its own Options backing array.
func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

func cloneAll(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}

func sortByID(qs []Question) {
	slices.SortStableFunc(qs, func(a, b Question) int { return strings.Compare(a.ID, b.ID) })
}
