package spacedrep

import "time"

// CardState is the scheduler's learning phase for a card.
type CardState int

const (
	CardNew        CardState = 0
	CardLearning   CardState = 1
	CardReview     CardState = 2
	CardRelearning CardState = 3
)

// MemoryState is the scheduler-owned memory model for one question. Callers
// treat it as opaque apart from Due, ScheduledDays and Stability.
type MemoryState struct {
	Due           time.Time `json:"due"`
	Stability     float64   `json:"stability"`
	Difficulty    float64   `json:"difficulty"`
	ElapsedDays   int       `json:"elapsed_days"`
	ScheduledDays int       `json:"scheduled_days"`
	Reps          int       `json:"reps"`
	Lapses        int       `json:"lapses"`
	State         CardState `json:"state"`
	LastReview    time.Time `json:"last_review,omitempty"`
}

// NewMemoryState returns a fresh, never-reviewed state due at now.
func NewMemoryState(now time.Time) MemoryState {
	return MemoryState{Due: now, State: CardNew}
}
