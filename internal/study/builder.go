package study

import (
	"fmt"
	"math"
	"slices"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/review"
)

// Preset names a study session length.
type Preset string

const (
	PresetShort  Preset = "short"
	PresetMedium Preset = "medium"
	PresetLong   Preset = "long"
)

// Presets maps each preset to its session size.
var Presets = map[Preset]int{
	PresetShort:  10,
	PresetMedium: 25,
	PresetLong:   40,
}

// Size returns the session size for p, falling back to medium.
func (p Preset) Size() int {
	if n, ok := Presets[p]; ok {
		return n
	}
	return Presets[PresetMedium]
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	p := Preset(s)
	if _, ok := Presets[p]; !ok {
		return "", fmt.Errorf("unknown preset %q (want short, medium or long)", s)
	}
	return p, nil
}

// Session mix targets. New questions fill what is left.
const (
	dueShare  = 0.60
	weakShare = 0.25
)

// Breakdown counts the questions of a built session by pool.
type Breakdown struct {
	Due  int
	Weak int
	New  int
}

// Built is a planned study session.
type Built struct {
	IDs       []string
	Breakdown Breakdown
}

// BuildSession plans a study session of up to size questions: about 60% due,
// 25% weak and the rest new, backfilled from weak, due and then new when a
// pool runs short. With onlyFocus set only the focus topic is used; with a
// focus topic and onlyFocus unset the focus topic's questions come first in
// every pool.
func BuildSession(pool *bank.Pool, m review.Map, today string, size int, focus bank.TopicID, onlyFocus bool) Built {
	if size <= 0 {
		return Built{}
	}

	scope := AllQuestions()
	if onlyFocus && focus != 0 {
		scope = TopicScope(focus)
	}

	var due, weak, fresh []string
	for _, q := range ordered(scope.Questions(pool), focus) {
		s := m[q.ID]
		switch {
		case s == nil:
			fresh = append(fresh, q.ID)
		case review.IsDue(s.NextReviewAt, today, s.LastSeenAt):
			due = append(due, q.ID)
		case review.IsWeak(s, today):
			weak = append(weak, q.ID)
		}
	}

	targetDue := int(math.Round(float64(size) * dueShare))
	targetWeak := int(math.Round(float64(size) * weakShare))
	targetNew := size - targetDue - targetWeak

	var b Built
	b.IDs = append(b.IDs, head(due, targetDue)...)
	b.IDs = append(b.IDs, head(weak, targetWeak)...)
	b.IDs = append(b.IDs, head(fresh, targetNew)...)

	if len(b.IDs) < size {
		taken := make(map[string]bool, len(b.IDs))
		for _, id := range b.IDs {
			taken[id] = true
		}
		for _, id := range slices.Concat(weak, due, fresh) {
			if len(b.IDs) == size {
				break
			}
			if !taken[id] {
				taken[id] = true
				b.IDs = append(b.IDs, id)
			}
		}
	}

	for _, id := range b.IDs {
		s := m[id]
		switch {
		case s == nil:
			b.Breakdown.New++
		case review.IsDue(s.NextReviewAt, today, s.LastSeenAt):
			b.Breakdown.Due++
		default:
			b.Breakdown.Weak++
		}
	}
	return b
}

// WeakIDs lists the weak questions in scope, sorted by id. It feeds targeted
// review sessions.
func WeakIDs(pool *bank.Pool, m review.Map, today string, scope Scope) []string {
	var out []string
	for _, q := range scope.Questions(pool) {
		if review.IsWeak(m[q.ID], today) {
			out = append(out, q.ID)
		}
	}
	return out
}

// ordered moves the focus topic's questions to the front, keeping id order
// within each group.
func ordered(qs []bank.Question, focus bank.TopicID) []bank.Question {
	if focus == 0 {
		return qs
	}
	slices.SortStableFunc(qs, func(a, b bank.Question) int {
		af, bf := a.TopicID == focus, b.TopicID == focus
		switch {
		case af == bf:
			return 0
		case af:
			return -1
		default:
			return 1
		}
	})
	return qs
}

func head(ids []string, n int) []string {
	if n < 0 {
		n = 0
	}
	return ids[:min(n, len(ids))]
}
