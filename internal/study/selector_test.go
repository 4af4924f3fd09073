package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/spacedrep"
)

const today = "2025-12-25"

func dueState() *review.State {
	return &review.State{NextReviewAt: "2025-12-20", LastSeenAt: "2025-12-10", CorrectCount: 1, LastResult: spacedrep.OutcomeGuessed}
}

func learningState(lastSeen string) *review.State {
	return &review.State{NextReviewAt: "2026-01-03", LastSeenAt: lastSeen, CorrectCount: 1, LastResult: spacedrep.OutcomeKnew}
}

func weakState() *review.State {
	return &review.State{NextReviewAt: "2026-01-03", LastSeenAt: "2025-12-20", WrongCount: 3, LeechScore: 6, LastResult: spacedrep.OutcomeWrong}
}

func intp(n int) *int { return &n }

func TestAvoidWindow(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 4},
		{10, 4},
		{25, 10},
		{40, 16},
		{100, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AvoidWindow(tt.n), "n=%d", tt.n)
	}
}

func TestNext_DynamicWindow(t *testing.T) {
	pool := banktest.MinimumExamPool()

	// 25 questions: the last 10 shown are avoided.
	id, ok := Next(Request{
		Pool: pool, Reviews: review.Map{}, Today: today,
		Recent: []string{"1001", "1002", "1003", "1004", "1005", "1006", "1007", "1008", "1009", "1010"},
	})
	require.True(t, ok)
	assert.Equal(t, "2001", id)

	// 10 questions in topic 1: only the last 4 are avoided.
	id, ok = Next(Request{
		Pool: pool, Reviews: review.Map{}, Today: today, Scope: TopicScope(1),
		Recent: []string{"1005", "1006", "1007", "1008", "1009", "1010", "1001", "1002", "1003", "1004"},
	})
	require.True(t, ok)
	assert.Equal(t, "1005", id)
}

func TestNext_AvoidOverride(t *testing.T) {
	id, ok := Next(Request{
		Pool: banktest.MinimumExamPool(), Reviews: review.Map{}, Today: today, Scope: TopicScope(1),
		Recent:      []string{"1003", "1004", "1001", "1002"},
		AvoidRecent: intp(2),
	})
	require.True(t, ok)
	assert.Equal(t, "1003", id)
}

func TestNext_BucketOrder(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 4})

	m := review.Map{
		"1001": learningState("2025-12-20"),
		"1003": weakState(),
		"1004": dueState(),
	}
	id, _ := Next(Request{Pool: pool, Reviews: m, Today: today})
	assert.Equal(t, "1004", id, "due first")

	delete(m, "1004")
	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today})
	assert.Equal(t, "1003", id, "then weak")

	delete(m, "1003")
	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today})
	assert.Equal(t, "1002", id, "then new")

	m["1002"] = learningState("2025-12-21")
	m["1003"] = learningState("2025-12-19")
	m["1004"] = learningState("2025-12-22")
	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today})
	assert.Equal(t, "1003", id, "learning, oldest review first without history")

	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today, Recent: []string{"1004"}})
	assert.Equal(t, "1001", id, "learning, by id once history exists")
}

func TestNext_NeverStalls(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 5})
	ids := pool.SortedIDs()

	for skip := range ids {
		var recent []string
		for i, id := range ids {
			if i != skip {
				recent = append(recent, id)
			}
		}
		got, ok := Next(Request{Pool: pool, Reviews: review.Map{}, Today: today, Recent: recent})
		require.True(t, ok)
		assert.Equal(t, ids[skip], got)
	}
}

func TestNext_TwoQuestionScopeAlternates(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{2: 2})
	var recent []string
	for i := 0; i < 6; i++ {
		id, ok := Next(Request{Pool: pool, Reviews: review.Map{}, Today: today, Recent: recent})
		require.True(t, ok)
		if len(recent) > 0 {
			assert.NotEqual(t, recent[len(recent)-1], id)
		}
		recent = append(recent, id)
	}
}

func TestNext_ExhaustedScopeRepeatsLeastRecent(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{3: 3})
	id, ok := Next(Request{
		Pool: pool, Reviews: review.Map{}, Today: today,
		Recent:      []string{"3002", "3003", "3001", "3002", "3003"},
		AvoidRecent: intp(10),
	})
	require.True(t, ok)
	assert.Equal(t, "3001", id)
}

func TestNext_DefersConfidentAnswersFromToday(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 3})
	m := review.Map{
		"1001": learningState(today),
		"1002": learningState(today),
		"1003": learningState("2025-12-01"),
	}
	// 1003 is the only alternative and it sits in the avoid window.
	id, ok := Next(Request{Pool: pool, Reviews: m, Today: today, Recent: []string{"1003"}})
	require.True(t, ok)
	assert.Equal(t, "1003", id)

	m["1003"] = learningState(today)
	id, ok = Next(Request{Pool: pool, Reviews: m, Today: today, Recent: []string{"1001"}})
	require.True(t, ok)
	assert.Equal(t, "1002", id, "all deferred: still answers")
}

func TestNext_Priority(t *testing.T) {
	pool := banktest.MinimumExamPool()
	m := review.Map{"1001": dueState()}

	id, _ := Next(Request{Pool: pool, Reviews: m, Today: today, Priority: []string{"5003", "2001"}})
	assert.Equal(t, "5003", id, "queue order, over due bucket")

	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today, Priority: []string{"5003", "2001"}, Recent: []string{"5003"}})
	assert.Equal(t, "2001", id, "prefers non-recent")

	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today, Priority: []string{"5003"}, Recent: []string{"5003"}})
	assert.Equal(t, "5003", id, "repeats when every priority id is recent")

	id, _ = Next(Request{Pool: pool, Reviews: m, Today: today, Scope: TopicScope(1), Priority: []string{"5003"}})
	assert.Equal(t, "1001", id, "out-of-scope priority ignored")
}

func TestNext_EmptyScope(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 2})
	_, ok := Next(Request{Pool: pool, Reviews: review.Map{}, Today: today, Scope: TopicScope(4)})
	assert.False(t, ok)
}
