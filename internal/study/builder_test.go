package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/review"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, 10, PresetShort.Size())
	assert.Equal(t, 25, PresetMedium.Size())
	assert.Equal(t, 40, PresetLong.Size())
	assert.Equal(t, 25, Preset("bogus").Size())

	p, err := ParsePreset("long")
	require.NoError(t, err)
	assert.Equal(t, PresetLong, p)

	_, err = ParsePreset("huge")
	assert.Error(t, err)
}

func TestBuildSession_Mix(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 20, 5: 20})
	m := review.Map{}
	for i := 1; i <= 10; i++ {
		m[banktest.ID(1, i)] = dueState()
	}
	for i := 11; i <= 15; i++ {
		m[banktest.ID(1, i)] = weakState()
	}

	b := BuildSession(pool, m, today, 10, 0, false)
	require.Len(t, b.IDs, 10)
	assert.Equal(t, Breakdown{Due: 6, Weak: 3, New: 1}, b.Breakdown)
	assert.Equal(t, "1001", b.IDs[0])
	assert.Equal(t, "1011", b.IDs[6])
	assert.Equal(t, "1016", b.IDs[9])
}

func TestBuildSession_Backfill(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 10})
	m := review.Map{"1001": dueState(), "1002": weakState()}

	b := BuildSession(pool, m, today, 10, 0, false)
	assert.Len(t, b.IDs, 10)
	assert.Equal(t, Breakdown{Due: 1, Weak: 1, New: 8}, b.Breakdown)

	seen := map[string]bool{}
	for _, id := range b.IDs {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestBuildSession_SmallPool(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{3: 2})
	b := BuildSession(pool, review.Map{}, today, 25, 0, false)
	assert.Equal(t, []string{"3001", "3002"}, b.IDs)
	assert.Empty(t, BuildSession(pool, review.Map{}, today, 0, 0, false).IDs)
}

func TestBuildSession_Focus(t *testing.T) {
	pool := banktest.MinimumExamPool()

	only := BuildSession(pool, review.Map{}, today, 10, 5, true)
	require.Len(t, only.IDs, 7)
	for _, id := range only.IDs {
		assert.Equal(t, bank.TopicID(5), banktest.TopicOf(id))
	}

	preferred := BuildSession(pool, review.Map{}, today, 10, 5, false)
	require.Len(t, preferred.IDs, 10)
	assert.Equal(t, "5001", preferred.IDs[0])
	assert.Equal(t, "1001", preferred.IDs[7])
}

func TestWeakIDs(t *testing.T) {
	pool := banktest.MinimumExamPool()
	m := review.Map{"5002": weakState(), "1003": weakState(), "1004": learningState("2025-12-20")}
	assert.Equal(t, []string{"1003", "5002"}, WeakIDs(pool, m, today, AllQuestions()))
	assert.Equal(t, []string{"5002"}, WeakIDs(pool, m, today, TopicScope(5)))
}
