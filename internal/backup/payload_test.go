package backup

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/study"
)

var now = time.Date(2025, 12, 25, 9, 30, 0, 0, time.UTC)

func sampleProgress() review.Map {
	return review.Map{
		"1001": {
			Card: spacedrep.MemoryState{
				Due:           now.Add(48 * time.Hour),
				Stability:     2.5,
				Difficulty:    5.1,
				ScheduledDays: 2,
				Reps:          1,
				State:         spacedrep.CardReview,
				LastReview:    now,
			},
			NextReviewAt: "2025-12-27",
			SeenCount:    1,
			CorrectCount: 1,
			LastSeenAt:   "2025-12-25",
			LastResult:   spacedrep.OutcomeKnew,
		},
		"5003": {
			Card:         spacedrep.MemoryState{Due: now, ScheduledDays: 0, State: spacedrep.CardLearning},
			NextReviewAt: "2025-12-25",
			SeenCount:    3,
			CorrectCount: 1,
			WrongCount:   2,
			LastSeenAt:   "2025-12-25",
			LastWrongAt:  "2025-12-25",
			LastResult:   spacedrep.OutcomeWrong,
			LeechScore:   4,
			ManualWeak:   true,
		},
	}
}

func importReason(t *testing.T, err error) string {
	t.Helper()
	var ie *ImportError
	require.True(t, errors.As(err, &ie), "want *ImportError, got %v", err)
	return ie.Reason
}

func TestRoundTrip(t *testing.T) {
	settings := study.Settings{DefaultPreset: study.PresetLong, RequeueWrong: false, FocusTopic: 3, OnlyFocus: true}
	data, err := Encode(New("ccse-2-26", settings, sampleProgress(), now))
	require.NoError(t, err)

	p, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleProgress(), p.Progress)
	assert.Equal(t, settings, p.Settings)
	assert.Equal(t, "ccse-2-26", p.DatasetVersion)
	assert.True(t, p.CreatedAt.Equal(now))
}

func TestRoundTrip_Gzip(t *testing.T) {
	data, err := EncodeGzip(New("ccse-2-26", study.DefaultSettings(), sampleProgress(), now))
	require.NoError(t, err)
	assert.True(t, IsGzip(data))

	p, err := DecodeAny(data)
	require.NoError(t, err)
	assert.Equal(t, sampleProgress(), p.Progress)

	_, err = DecodeGzip([]byte("not gzip"))
	assert.Equal(t, "Invalid gzip data", importReason(t, err))
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		reason string
	}{
		{"not json", `{`, "Invalid JSON"},
		{"array", `[1,2]`, "Invalid JSON"},
		{"string", `"hello"`, "Invalid JSON"},
		{"no version", `{"progressById":{}}`, "Unsupported schemaVersion"},
		{"future version", `{"schemaVersion":2,"progressById":{}}`, "Unsupported schemaVersion"},
		{"no progress", `{"schemaVersion":1}`, "Missing progressById"},
		{"progress not object", `{"schemaVersion":1,"progressById":[]}`, "Missing progressById"},
		{"missing counters", `{"schemaVersion":1,"progressById":{"1001":{"card":{"due":"2025-12-25T00:00:00Z","stability":1,"scheduled_days":0},"nextReviewAt":"2025-12-25"}}}`, "Invalid payload"},
		{"bad preset", `{"schemaVersion":1,"progressById":{},"settings":{"defaultPreset":"huge"}}`, "Invalid payload"},
		{"bad date", `{"schemaVersion":1,"progressById":{"1001":{"card":{"due":"2025-12-25T00:00:00Z","stability":1,"scheduled_days":0},"nextReviewAt":"25/12/2025","seenCount":1,"correctCount":1,"wrongCount":0,"leechScore":0}}}`, "Invalid progress for 1001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode([]byte(tt.data))
			assert.Nil(t, p)
			assert.Equal(t, tt.reason, importReason(t, err))
		})
	}
}

func TestDecode_SettingsDefaults(t *testing.T) {
	p, err := Decode([]byte(`{"schemaVersion":1,"progressById":{}}`))
	require.NoError(t, err)
	assert.Equal(t, study.DefaultSettings(), p.Settings)
	assert.Empty(t, p.Progress)

	p, err = Decode([]byte(`{"schemaVersion":1,"progressById":{},"settings":null}`))
	require.NoError(t, err)
	assert.Equal(t, study.DefaultSettings(), p.Settings)

	p, err = Decode([]byte(`{"schemaVersion":1,"progressById":{},"settings":{"requeueWrong":false,"focusTareaId":"all"}}`))
	require.NoError(t, err)
	want := study.DefaultSettings()
	want.RequeueWrong = false
	assert.Equal(t, want, p.Settings)
}
