package spacedrep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSRS_FreshStateIsCreated(t *testing.T) {
	s := NewFSRS(DefaultConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	next := s.Advance(nil, now, GradeGood)

	assert.Equal(t, 1, next.Reps)
	assert.NotEqual(t, CardNew, next.State)
	assert.False(t, next.Due.Before(now), "due must not be in the past")
	assert.Greater(t, next.Stability, 0.0)
}

func TestFSRS_DoesNotMutatePrior(t *testing.T) {
	s := NewFSRS(DefaultConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := s.Advance(nil, now, GradeGood)
	snapshot := first

	_ = s.Advance(&first, now.AddDate(0, 0, 3), GradeAgain)
	assert.Equal(t, snapshot, first)
}

func TestFSRS_GoodOutlastsAgain(t *testing.T) {
	s := NewFSRS(DefaultConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	card := s.Advance(nil, now, GradeGood)
	for i := 0; i < 4; i++ {
		now = card.Due.Add(time.Hour)
		card = s.Advance(&card, now, GradeGood)
	}
	good := card

	again := s.Advance(&good, now.Add(time.Hour), GradeAgain)
	assert.Greater(t, good.ScheduledDays, again.ScheduledDays)
	assert.Equal(t, good.Lapses+1, again.Lapses)
}

func TestNext_ReturnsLocalDay(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	due := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC) // 01:30 on June 2 in Madrid
	var grades []Grade
	stub := stubScheduler{state: MemoryState{Due: due, ScheduledDays: 1}, grades: &grades}

	state, day := Next(stub, nil, due.Add(-24*time.Hour), madrid, OutcomeKnew)
	assert.Equal(t, "2025-06-02", day)
	assert.Equal(t, []Grade{GradeGood}, grades)
	assert.Equal(t, 1, state.ScheduledDays)
}

func TestNewFSRS_IgnoresOutOfRangeRetention(t *testing.T) {
	s := NewFSRS(Config{RequestRetention: 1.5})
	require.NotNil(t, s)
	next := s.Advance(nil, time.Now(), GradeHard)
	assert.Equal(t, 1, next.Reps)
}

type stubScheduler struct {
	state  MemoryState
	grades *[]Grade
}

func (s stubScheduler) Advance(_ *MemoryState, _ time.Time, g Grade) MemoryState {
	if s.grades != nil {
		*s.grades = append(*s.grades, g)
	}
	return s.state
}
