package study

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/review"
)

func TestAdaptive_Lifecycle(t *testing.T) {
	pool := banktest.MinimumExamPool()
	var a Adaptive

	_, ok := a.Advance(pool, review.Map{}, today)
	assert.False(t, ok, "inactive")

	id, ok := a.Start(pool, review.Map{}, today, TopicScope(3), []string{"3002"})
	require.True(t, ok)
	assert.Equal(t, "3002", id)
	assert.True(t, a.Active)
	assert.Equal(t, []string{"3002"}, a.Recent)

	a.Record("3002", true)
	assert.Empty(t, a.Priority)
	assert.Equal(t, 1, a.Answered)
	assert.Equal(t, 1, a.Correct)

	id, ok = a.Advance(pool, review.Map{}, today)
	require.True(t, ok)
	assert.Equal(t, "3001", id)
	assert.Equal(t, id, a.CurrentID)

	a.Record("3001", false)
	assert.Equal(t, 2, a.Answered)
	assert.Equal(t, 1, a.Correct)

	a.Finish()
	assert.Equal(t, Adaptive{}, a)
}

func TestAdaptive_RecentIsCapped(t *testing.T) {
	pool := banktest.Pool(map[bank.TopicID]int{1: 60})
	var a Adaptive
	a.Start(pool, review.Map{}, today, AllQuestions(), nil)
	for i := 0; i < 30; i++ {
		_, ok := a.Advance(pool, review.Map{}, today)
		require.True(t, ok)
	}
	assert.Len(t, a.Recent, RecentCap)
	assert.Equal(t, a.CurrentID, a.Recent[RecentCap-1])
}

func TestAdaptive_RecordInactiveIsNoop(t *testing.T) {
	var a Adaptive
	a.Record("1001", true)
	assert.Zero(t, a.Answered)
}

func TestSettings_JSON(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)
	assert.JSONEq(t, `{"defaultPreset":"medium","requeueWrong":true,"focusTareaId":"all","onlyThisTarea":false}`, string(data))

	s := Settings{DefaultPreset: PresetShort, FocusTopic: 4, OnlyFocus: true}
	data, err = json.Marshal(s)
	require.NoError(t, err)

	var back Settings
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestMergeSettings(t *testing.T) {
	tests := []struct {
		raw  string
		want Settings
	}{
		{"", DefaultSettings()},
		{"null", DefaultSettings()},
		{`{"requeueWrong":false}`, Settings{DefaultPreset: PresetMedium, FocusTopic: FocusAll}},
		{`{"focusTareaId":2,"onlyThisTarea":true}`, Settings{DefaultPreset: PresetMedium, RequeueWrong: true, FocusTopic: 2, OnlyFocus: true}},
		{`{"defaultPreset":"long","focusTareaId":"all"}`, Settings{DefaultPreset: PresetLong, RequeueWrong: true}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got, err := MergeSettings(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MergeSettings(json.RawMessage(`{"focusTareaId":9}`))
	assert.Error(t, err)
}
