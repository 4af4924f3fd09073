package study

import (
	"math"
	"slices"
	"strings"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/review"
)

// Avoid-window tuning: roughly 40% of the scope, clamped.
const (
	avoidFactor = 0.4
	avoidMin    = 4
	avoidMax    = 20
)

// AvoidWindow returns how many of the most recent history entries are
// avoided for a scope of n questions. It is never n or more, so a scope with
// at least one question always has a candidate outside the window.
func AvoidWindow(n int) int {
	w := int(math.Round(float64(n) * avoidFactor))
	w = max(avoidMin, min(avoidMax, w))
	return min(w, max(0, n-1))
}

// Request is the input to Next.
type Request struct {
	Pool    *bank.Pool
	Reviews review.Map
	Today   string
	Scope   Scope

	// Recent holds previously shown ids, oldest first.
	Recent []string

	// Priority ids are served before any bucket, in order.
	Priority []string

	// AvoidRecent overrides AvoidWindow when non-nil.
	AvoidRecent *int
}

type bucket struct {
	name string
	ids  []string
}

// Next picks the next question id for an adaptive session. It returns false
// only when the scope holds no questions.
//
// In-scope priority ids win outright. Otherwise questions are bucketed as
// due, weak, new and learning, and the first bucket with a question outside
// the avoid window supplies it. When every bucket is shadowed by recent
// history the least recently shown question is repeated. Questions answered
// with confidence today are held back until nothing else is left.
func Next(req Request) (string, bool) {
	questions := req.Scope.Questions(req.Pool)
	if len(questions) == 0 {
		return "", false
	}

	window := AvoidWindow(len(questions))
	if req.AvoidRecent != nil {
		window = max(0, *req.AvoidRecent)
	}
	p := newPicker(req.Recent, window, req.Reviews)

	if prio := inScopePriority(questions, req.Priority); len(prio) > 0 {
		for _, id := range prio {
			if !p.avoid[id] {
				return id, true
			}
		}
		return prio[0], true
	}

	buckets, deferred := classify(questions, req.Reviews, req.Today)
	for _, b := range buckets {
		if id, ok := p.fresh(b.ids); ok {
			return id, true
		}
	}
	for _, b := range buckets {
		if id, ok := p.leastRecent(b.ids); ok {
			return id, true
		}
	}
	return p.pick(deferred.ids)
}

func inScopePriority(questions []bank.Question, priority []string) []string {
	if len(priority) == 0 {
		return nil
	}
	in := make(map[string]bool, len(questions))
	for _, q := range questions {
		in[q.ID] = true
	}
	var out []string
	for _, id := range priority {
		if in[id] && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// classify splits questions into the ordered main buckets and the deferred
// bucket of confident answers given today. Each question lands in exactly
// one bucket; input order (by id) is kept.
func classify(questions []bank.Question, m review.Map, today string) ([]bucket, bucket) {
	due := bucket{name: "due"}
	weak := bucket{name: "weak"}
	fresh := bucket{name: "new"}
	learning := bucket{name: "learning"}
	deferred := bucket{name: "knew-today"}

	for _, q := range questions {
		s := m[q.ID]
		switch {
		case s == nil:
			fresh.ids = append(fresh.ids, q.ID)
		case review.IsDue(s.NextReviewAt, today, s.LastSeenAt):
			due.ids = append(due.ids, q.ID)
		case review.KnewToday(s, today):
			deferred.ids = append(deferred.ids, q.ID)
		case review.IsWeak(s, today):
			weak.ids = append(weak.ids, q.ID)
		default:
			learning.ids = append(learning.ids, q.ID)
		}
	}
	return []bucket{due, weak, fresh, learning}, deferred
}

// picker is the single choice rule applied to every bucket.
type picker struct {
	avoid    map[string]bool
	lastSeen map[string]int // last index in recent history
	history  bool
	reviews  review.Map
}

func newPicker(recent []string, window int, reviews review.Map) *picker {
	p := &picker{
		avoid:    make(map[string]bool, window),
		lastSeen: make(map[string]int, len(recent)),
		history:  len(recent) > 0,
		reviews:  reviews,
	}
	for i, id := range recent {
		p.lastSeen[id] = i
	}
	if window > len(recent) {
		window = len(recent)
	}
	for _, id := range recent[len(recent)-window:] {
		p.avoid[id] = true
	}
	return p
}

// pick prefers a question outside the avoid window, else the least recent.
func (p *picker) pick(ids []string) (string, bool) {
	if id, ok := p.fresh(ids); ok {
		return id, true
	}
	return p.leastRecent(ids)
}

// fresh returns the first id outside the avoid window. Without any history
// the question reviewed longest ago (never reviewed first) wins, so a new
// session does not always open on the lowest id.
func (p *picker) fresh(ids []string) (string, bool) {
	var candidates []string
	for _, id := range ids {
		if !p.avoid[id] {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	if p.history {
		return slices.Min(candidates), true
	}
	return slices.MinFunc(candidates, func(a, b string) int {
		if c := strings.Compare(p.lastReviewed(a), p.lastReviewed(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}), true
}

// leastRecent returns the id shown furthest in the past, with ids that
// never appeared in history first and ties broken by id.
func (p *picker) leastRecent(ids []string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}
	return slices.MinFunc(ids, func(a, b string) int {
		ia, ib := p.position(a), p.position(b)
		if ia != ib {
			return ia - ib
		}
		return strings.Compare(a, b)
	}), true
}

func (p *picker) position(id string) int {
	if i, ok := p.lastSeen[id]; ok {
		return i
	}
	return -1
}

func (p *picker) lastReviewed(id string) string {
	if s := p.reviews[id]; s != nil {
		return s.LastSeenAt
	}
	return ""
}
