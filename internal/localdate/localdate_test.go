package localdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_UsesLocation(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 23:30 UTC on Dec 31 is already Jan 1 in Madrid.
	ts := time.Date(2025, 12, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-01", Format(ts, madrid))
	assert.Equal(t, "2025-12-31", Format(ts, time.UTC))
}

func TestParse_LocalMidnight(t *testing.T) {
	got, err := Parse("2025-03-07", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)))

	_, err = Parse("07/03/2025", time.UTC)
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-01-01", "2025-01-01", 0},
		{"2025-01-01", "2025-01-04", 3},
		{"2025-01-04", "2025-01-01", -3},
		{"2024-02-28", "2024-03-01", 2},
		// DST change in Europe does not affect day arithmetic.
		{"2025-03-29", "2025-03-31", 2},
	}
	for _, tt := range tests {
		got, err := DaysBetween(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-12-30", 7)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", got)

	_, err = AddDays("nope", 1)
	assert.Error(t, err)
}

func TestLexicographicOrderMatchesTime(t *testing.T) {
	assert.True(t, "2025-09-30" < "2025-10-01")
	assert.True(t, "2025-12-31" < "2026-01-01")
	assert.True(t, Valid("2025-10-01"))
	assert.False(t, Valid("2025-13-01"))
}
