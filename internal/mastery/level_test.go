package mastery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/spacedrep"
)

const today = "2025-12-25"

func learning() *review.State {
	return &review.State{NextReviewAt: "2025-12-27", CorrectCount: 1, LastResult: spacedrep.OutcomeKnew, LastSeenAt: today}
}

func mastered() *review.State {
	return &review.State{NextReviewAt: "2026-01-20", Card: spacedrep.MemoryState{ScheduledDays: 26}, LastResult: spacedrep.OutcomeKnew}
}

func TestIsMasteredForLevel_Superset(t *testing.T) {
	far := &review.State{NextReviewAt: "2026-01-01"}
	assert.False(t, review.IsMastered(far))
	assert.True(t, IsMasteredForLevel(far, today), "review date >= today+7")

	near := &review.State{NextReviewAt: "2025-12-31"}
	assert.False(t, IsMasteredForLevel(near, today))

	stable := &review.State{NextReviewAt: "2025-12-26", Card: spacedrep.MemoryState{Stability: 7.2}}
	assert.True(t, IsMasteredForLevel(stable, today))

	assert.True(t, IsMasteredForLevel(mastered(), today))
	assert.False(t, IsMasteredForLevel(nil, today))
}

func TestComputeLevel_Thresholds(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 20}) // 20 questions
	ids := pool.SortedIDs()

	build := func(seen, masteredN int) review.Map {
		m := review.Map{}
		for i := 0; i < seen; i++ {
			if i < masteredN {
				m[ids[i]] = mastered()
			} else {
				m[ids[i]] = learning()
			}
		}
		return m
	}

	tests := []struct {
		name           string
		seen, mastered int
		want           Level
	}{
		{"nothing seen", 0, 0, LevelBeginner},
		{"coverage below 15%", 2, 2, LevelBeginner},
		{"coverage 15%, low mastery", 3, 0, LevelIntermediate},
		{"mastery 30%", 20, 6, LevelIntermediate},
		{"mastery 35%", 20, 7, LevelAdvanced},
		{"mastery 65%", 20, 13, LevelAdvanced},
		{"mastery 70%", 20, 14, LevelReady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeLevel(pool, build(tt.seen, tt.mastered), today)
			assert.Equal(t, tt.want, s.Level)
			assert.Equal(t, tt.want.Description(), s.Description)
			assert.Equal(t, tt.seen, s.Seen)
			assert.Equal(t, tt.mastered, s.Mastered)
		})
	}
}

func TestComputeLevel_EmptyPool(t *testing.T) {
	s := ComputeLevel(bank.NewPool(bank.DatasetVersion, nil, nil), review.Map{}, today)
	assert.Equal(t, LevelBeginner, s.Level)
	assert.Zero(t, s.Coverage)
	assert.Zero(t, s.Mastery)
}

func TestCountSeen_IgnoresUnknownIDs(t *testing.T) {
	pool := banktest.MinimumExamPool()
	m := review.Map{"1001": learning(), "not-in-pool": learning()}
	assert.Equal(t, 1, CountSeen(pool, m))
}

func TestBreakdown(t *testing.T) {
	pool := banktest.MinimumExamPool()
	m := review.Map{
		banktest.ID(1, 1): mastered(),
		banktest.ID(1, 2): {NextReviewAt: "2025-12-20"},
		banktest.ID(3, 1): {NextReviewAt: "2026-01-01", ManualWeak: true},
	}

	got := Breakdown(pool, m, today)
	assert.Len(t, got, 5)

	t1 := got[0]
	assert.Equal(t, bank.TopicID(1), t1.Topic.ID)
	assert.Equal(t, "Tarea 1", t1.Topic.Name)
	assert.Equal(t, 10, t1.Total)
	assert.Equal(t, 1, t1.ByStatus[review.StatusMastered])
	assert.Equal(t, 1, t1.ByStatus[review.StatusDue])
	assert.Equal(t, 8, t1.ByStatus[review.StatusNew])

	assert.Equal(t, 1, got[2].ByStatus[review.StatusWeak])
	assert.Equal(t, 1, DueCount(pool, m, today))
}
