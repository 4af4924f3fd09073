package study

import (
	"slices"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/review"
)

// RecentCap is how many shown ids an adaptive session remembers.
const RecentCap = 20

// Adaptive is the state of an adaptive ("intelligent") study session. The
// zero value is an inactive session.
type Adaptive struct {
	Active    bool
	Scope     Scope
	Priority  []string
	CurrentID string
	Recent    []string
	Answered  int
	Correct   int
}

// Start resets a and selects the first question. It reports false when the
// scope is empty; the session is active either way.
func (a *Adaptive) Start(pool *bank.Pool, m review.Map, today string, scope Scope, priority []string) (string, bool) {
	*a = Adaptive{
		Active:   true,
		Scope:    scope,
		Priority: slices.Clone(priority),
	}
	return a.choose(pool, m, today)
}

// Record tallies one answer. An answered id leaves the priority queue.
func (a *Adaptive) Record(id string, correct bool) {
	if !a.Active {
		return
	}
	a.Answered++
	if correct {
		a.Correct++
	}
	a.Priority = slices.DeleteFunc(a.Priority, func(p string) bool { return p == id })
}

// Advance selects the next question. It is a no-op on an inactive session.
func (a *Adaptive) Advance(pool *bank.Pool, m review.Map, today string) (string, bool) {
	if !a.Active {
		return "", false
	}
	return a.choose(pool, m, today)
}

// Finish tears the session down.
func (a *Adaptive) Finish() {
	*a = Adaptive{}
}

func (a *Adaptive) choose(pool *bank.Pool, m review.Map, today string) (string, bool) {
	id, ok := Next(Request{
		Pool:     pool,
		Reviews:  m,
		Today:    today,
		Scope:    a.Scope,
		Recent:   a.Recent,
		Priority: a.Priority,
	})
	if !ok {
		a.CurrentID = ""
		return "", false
	}
	a.CurrentID = id
	a.Recent = append(a.Recent, id)
	if over := len(a.Recent) - RecentCap; over > 0 {
		a.Recent = slices.Delete(a.Recent, 0, over)
	}
	return id, true
}
