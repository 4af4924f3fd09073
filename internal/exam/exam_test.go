package exam

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/spacedrep"
)

const today = "2025-12-23"

func TestDistributionSumsToSize(t *testing.T) {
	total := 0
	for _, id := range bank.TopicIDs {
		total += Distribution[id]
	}
	assert.Equal(t, Size, total)
}

func TestBuild_OfficialDistribution(t *testing.T) {
	pool := banktest.MinimumExamPool()

	for seed := int64(0); seed < 20; seed++ {
		ids, err := Build(pool, review.Map{}, today, ModeOfficial, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Len(t, ids, Size)

		counts := map[bank.TopicID]int{}
		seen := map[string]bool{}
		for _, id := range ids {
			assert.False(t, seen[id], "seed %d: duplicate %s", seed, id)
			seen[id] = true
			counts[banktest.TopicOf(id)]++
		}
		assert.Equal(t, Distribution, counts, "seed %d", seed)
	}
}

func TestBuild_OfficialIsReproducible(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 30, 2: 10, 3: 10, 4: 10, 5: 20})

	a, err := Build(pool, review.Map{}, today, ModeOfficial, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Build(pool, review.Map{}, today, ModeOfficial, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_OfficialNeedsRNG(t *testing.T) {
	_, err := Build(banktest.MinimumExamPool(), review.Map{}, today, ModeOfficial, nil)
	assert.Error(t, err)
}

func TestBuild_Adaptive(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 12, 2: 3, 3: 2, 4: 3, 5: 7})
	m := review.Map{
		// due and short interval: 1 + 4 + 2
		"1012": {NextReviewAt: "2025-12-20", LastSeenAt: "2025-12-19", Card: spacedrep.MemoryState{ScheduledDays: 1}, LastResult: spacedrep.OutcomeKnew, CorrectCount: 1},
		// long interval, not due: 1
		"1001": {NextReviewAt: "2026-03-01", Card: spacedrep.MemoryState{ScheduledDays: 60}, LastResult: spacedrep.OutcomeKnew, CorrectCount: 5},
		"1002": {NextReviewAt: "2026-03-01", Card: spacedrep.MemoryState{ScheduledDays: 60}, LastResult: spacedrep.OutcomeKnew, CorrectCount: 5},
	}

	ids, err := Build(pool, m, today, ModeAdaptive, nil)
	require.NoError(t, err)
	require.Len(t, ids, Size)

	// The heaviest question leads; equal weights follow in id order.
	assert.Equal(t, []string{"1012", "1001", "1002", "1003", "1004", "1005", "1006", "1007", "1008", "1009"}, ids[:10])
	assert.Equal(t, []string{"2001", "2002", "2003"}, ids[10:13])
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		s    *review.State
		want int
	}{
		{"unseen", nil, 1},
		{"short interval", &review.State{NextReviewAt: "2025-12-30", Card: spacedrep.MemoryState{ScheduledDays: 3}, LastResult: spacedrep.OutcomeKnew}, 3},
		{"medium interval", &review.State{NextReviewAt: "2026-01-10", Card: spacedrep.MemoryState{ScheduledDays: 10}, LastResult: spacedrep.OutcomeKnew}, 2},
		{"long interval", &review.State{NextReviewAt: "2026-02-10", Card: spacedrep.MemoryState{ScheduledDays: 45}, LastResult: spacedrep.OutcomeKnew}, 1},
		{"due weak short", &review.State{NextReviewAt: "2025-12-22", Card: spacedrep.MemoryState{ScheduledDays: 1}, ManualWeak: true}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Weight(tt.s, today))
		})
	}
}

func TestBuild_InsufficientPool(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 10, 2: 3, 3: 1, 4: 3, 5: 7})

	for _, mode := range []Mode{ModeOfficial, ModeAdaptive} {
		_, err := Build(pool, review.Map{}, today, mode, rand.New(rand.NewSource(1)))
		var ipe *InsufficientPoolError
		require.True(t, errors.As(err, &ipe), "mode %s", mode)
		assert.Equal(t, bank.TopicID(3), ipe.Topic)
		assert.Equal(t, 2, ipe.Need)
		assert.Equal(t, 1, ipe.Have)
	}

	err := CheckFeasible(pool)
	var ipe *InsufficientPoolError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, bank.TopicID(3), ipe.Topic)

	assert.NoError(t, CheckFeasible(banktest.MinimumExamPool()))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("adaptive")
	require.NoError(t, err)
	assert.Equal(t, ModeAdaptive, m)
	_, err = ParseMode("oficial")
	assert.Error(t, err)
}

func TestScoreExam(t *testing.T) {
	pool := banktest.MinimumExamPool()
	ids := pool.SortedIDs()
	correct := map[string]bool{}
	for _, id := range ids[:15] {
		correct[id] = true
	}

	s := ScoreExam(ids, correct, pool)
	assert.Equal(t, 25, s.Total)
	assert.Equal(t, 15, s.Correct)
	assert.True(t, s.Passed)
	assert.Equal(t, TopicScore{Correct: 10, Total: 10}, s.ByTopic[1])
	assert.Equal(t, TopicScore{Correct: 3, Total: 3}, s.ByTopic[2])
	assert.Equal(t, TopicScore{Correct: 2, Total: 2}, s.ByTopic[3])
	assert.Equal(t, TopicScore{Correct: 0, Total: 3}, s.ByTopic[4])

	delete(correct, ids[0])
	s = ScoreExam(ids, correct, pool)
	assert.Equal(t, 14, s.Correct)
	assert.False(t, s.Passed)

	s = ScoreExam([]string{"9999"}, correct, pool)
	assert.Equal(t, 1, s.Total)
	assert.Len(t, s.ByTopic, 5)
}

func TestNewRecord_ClampsTimeSpent(t *testing.T) {
	finished := time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC)
	score := Score{Total: 25, Correct: 20, Passed: true}

	r := NewRecord("s1", ModeOfficial, finished, score, DefaultDuration, 50*time.Minute)
	assert.Equal(t, 2700, r.DurationSec)
	assert.Equal(t, 2700, r.TimeSpentSec)

	r = NewRecord("s1", ModeOfficial, finished, score, DefaultDuration, -time.Second)
	assert.Zero(t, r.TimeSpentSec)

	r = NewRecord("s1", ModeOfficial, finished, score, DefaultDuration, 90*time.Second)
	assert.Equal(t, 90, r.TimeSpentSec)
	assert.True(t, r.Passed)
}

func TestAppendHistory(t *testing.T) {
	var h []Record
	for i := 0; i < 35; i++ {
		h = AppendHistory(h, Record{SessionID: string(rune('A' + i))})
	}
	require.Len(t, h, HistoryCap)
	assert.Equal(t, string(rune('A'+34)), h[0].SessionID, "newest first")

	again := AppendHistory(h, Record{SessionID: h[3].SessionID, Correct: 99})
	assert.Equal(t, h, again)
}

func TestRecordDataConversion(t *testing.T) {
	score := ScoreExam(banktest.MinimumExamPool().SortedIDs(), map[string]bool{"1001": true}, banktest.MinimumExamPool())
	r := NewRecord("s9", ModeAdaptive, time.Date(2025, 12, 23, 11, 0, 0, 0, time.UTC), score, DefaultDuration, 20*time.Minute)

	d := r.ToData()
	assert.Equal(t, "adaptive", d.Mode)
	assert.Equal(t, 1, d.ByTopic[1].Correct)
	assert.Equal(t, r, RecordFromData(d))
}
