package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/spacedrep"
)

// fixedScheduler schedules every review a fixed number of days out.
type fixedScheduler struct {
	days   int
	grades []spacedrep.Grade
}

func (f *fixedScheduler) Advance(prior *spacedrep.MemoryState, now time.Time, g spacedrep.Grade) spacedrep.MemoryState {
	f.grades = append(f.grades, g)
	reps := 1
	if prior != nil {
		reps = prior.Reps + 1
	}
	return spacedrep.MemoryState{
		Due:           now.AddDate(0, 0, f.days),
		ScheduledDays: f.days,
		Reps:          reps,
		State:         spacedrep.CardReview,
		LastReview:    now,
	}
}

func TestApplyLeechDelta(t *testing.T) {
	tests := []struct {
		current int
		outcome spacedrep.Outcome
		want    int
	}{
		{0, spacedrep.OutcomeWrong, 2},
		{2, spacedrep.OutcomeGuessed, 3},
		{1, spacedrep.OutcomeKnew, 0},
		{0, spacedrep.OutcomeKnew, 0},
		{5, spacedrep.OutcomeKnew, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyLeechDelta(tt.current, tt.outcome), "%d %s", tt.current, tt.outcome)
	}
}

func TestApply_FirstAnswerWrong(t *testing.T) {
	sched := &fixedScheduler{days: 1}
	now := time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC)

	got := Apply(nil, sched, now, time.UTC, spacedrep.OutcomeWrong)

	assert.Equal(t, 1, got.SeenCount)
	assert.Equal(t, 0, got.CorrectCount)
	assert.Equal(t, 1, got.WrongCount)
	assert.Equal(t, "2025-12-25", got.LastSeenAt)
	assert.Equal(t, "2025-12-25", got.LastWrongAt)
	assert.Equal(t, spacedrep.OutcomeWrong, got.LastResult)
	assert.Equal(t, 2, got.LeechScore)
	assert.Equal(t, "2025-12-26", got.NextReviewAt)
	assert.Equal(t, []spacedrep.Grade{spacedrep.GradeAgain}, sched.grades)
}

func TestApply_CorrectKeepsLastWrongAndManualWeak(t *testing.T) {
	sched := &fixedScheduler{days: 4}
	now := time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC)
	prev := &State{
		Card:         spacedrep.MemoryState{Reps: 2},
		NextReviewAt: "2025-12-28",
		SeenCount:    2,
		CorrectCount: 1,
		WrongCount:   1,
		LastSeenAt:   "2025-12-25",
		LastWrongAt:  "2025-12-25",
		LastResult:   spacedrep.OutcomeWrong,
		LeechScore:   2,
		ManualWeak:   true,
	}
	before := *prev

	got := Apply(prev, sched, now, time.UTC, spacedrep.OutcomeKnew)

	assert.Equal(t, before, *prev, "previous state must not change")
	assert.Equal(t, 3, got.SeenCount)
	assert.Equal(t, 2, got.CorrectCount)
	assert.Equal(t, 1, got.WrongCount)
	assert.Equal(t, "2025-12-25", got.LastWrongAt)
	assert.Equal(t, "2025-12-28", got.LastSeenAt)
	assert.Equal(t, 1, got.LeechScore)
	assert.True(t, got.ManualWeak)
	assert.Equal(t, 3, got.Card.Reps)
	assert.Equal(t, "2026-01-01", got.NextReviewAt)
}

func TestApply_GuessedCountsAsCorrect(t *testing.T) {
	got := Apply(nil, &fixedScheduler{days: 1}, time.Now(), time.UTC, spacedrep.OutcomeGuessed)
	assert.Equal(t, 1, got.CorrectCount)
	assert.Equal(t, 1, got.LeechScore)
	assert.Empty(t, got.LastWrongAt)
}

func TestApply_CountersMonotonic(t *testing.T) {
	sched := &fixedScheduler{days: 1}
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	var s *State
	outcomes := []spacedrep.Outcome{
		spacedrep.OutcomeWrong, spacedrep.OutcomeKnew, spacedrep.OutcomeKnew,
		spacedrep.OutcomeGuessed, spacedrep.OutcomeWrong, spacedrep.OutcomeKnew,
	}
	for i, o := range outcomes {
		next := Apply(s, sched, now.AddDate(0, 0, i), time.UTC, o)
		if s != nil {
			require.GreaterOrEqual(t, next.CorrectCount, s.CorrectCount)
			require.GreaterOrEqual(t, next.WrongCount, s.WrongCount)
		}
		require.GreaterOrEqual(t, next.LeechScore, 0)
		s = next
	}
	assert.Equal(t, len(outcomes), s.SeenCount)
}

func TestToggleManualWeak(t *testing.T) {
	m := Map{"1001": {NextReviewAt: "2025-01-01"}}
	original := m["1001"]

	assert.True(t, ToggleManualWeak(m, "1001"))
	assert.True(t, m["1001"].ManualWeak)
	assert.False(t, original.ManualWeak, "toggle copies the state")

	assert.True(t, ToggleManualWeak(m, "1001"))
	assert.False(t, m["1001"].ManualWeak)

	assert.False(t, ToggleManualWeak(m, "unseen"))
	_, exists := m["unseen"]
	assert.False(t, exists)
}

func TestMapClone(t *testing.T) {
	m := Map{"1001": {SeenCount: 1}}
	cp := m.Clone()
	cp["1001"].SeenCount = 9
	assert.Equal(t, 1, m["1001"].SeenCount)
}

func TestValidate(t *testing.T) {
	good := &State{NextReviewAt: "2025-01-02", LastSeenAt: "2025-01-01", LastResult: spacedrep.OutcomeKnew}
	assert.NoError(t, Validate(good))

	assert.Error(t, Validate(nil))
	assert.Error(t, Validate(&State{NextReviewAt: "2025-01-02", LeechScore: -1}))
	assert.Error(t, Validate(&State{NextReviewAt: "2025-01-02", WrongCount: -1}))
	assert.Error(t, Validate(&State{NextReviewAt: "tomorrow"}))
	assert.Error(t, Validate(&State{NextReviewAt: "2025-01-02", LastWrongAt: "x"}))
	assert.Error(t, Validate(&State{NextReviewAt: "2025-01-02", LastResult: "easy"}))
}
