package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func daysAgo(n int, hour int) time.Time {
	return time.Date(2026, 10, 19-n, hour, 0, 0, 0, time.UTC)
}

func TestCalculateStreak(t *testing.T) {
	tests := []struct {
		name        string
		performedAt []time.Time
		want        Streak
	}{
		{
			name: "empty",
			want: Streak{},
		},
		{
			name:        "single session today",
			performedAt: []time.Time{daysAgo(0, 9)},
			want:        Streak{Current: 1, Longest: 1},
		},
		{
			name:        "recent run then a gap",
			performedAt: []time.Time{daysAgo(0, 9), daysAgo(1, 18), daysAgo(2, 7), daysAgo(5, 12)},
			want:        Streak{Current: 3, Longest: 3},
		},
		{
			name:        "run ending yesterday is still current",
			performedAt: []time.Time{daysAgo(1, 20), daysAgo(2, 20)},
			want:        Streak{Current: 2, Longest: 2},
		},
		{
			name:        "stale run",
			performedAt: []time.Time{daysAgo(3, 9), daysAgo(4, 9)},
			want:        Streak{Current: 0, Longest: 2},
		},
		{
			name:        "longest run is older than current",
			performedAt: []time.Time{daysAgo(0, 9), daysAgo(3, 9), daysAgo(4, 9), daysAgo(5, 9), daysAgo(6, 9)},
			want:        Streak{Current: 1, Longest: 4},
		},
		{
			name:        "same day sessions count once and do not break the run",
			performedAt: []time.Time{daysAgo(0, 19), daysAgo(0, 8), daysAgo(1, 18), daysAgo(1, 6)},
			want:        Streak{Current: 2, Longest: 2},
		},
		{
			name:        "second session today keeps yesterday in the run",
			performedAt: []time.Time{daysAgo(0, 14), daysAgo(0, 13), daysAgo(1, 14)},
			want:        Streak{Current: 2, Longest: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStreak(tt.performedAt, now))
		})
	}
}

func TestCalculateStreak_UsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	localNow := time.Date(2026, 10, 19, 10, 0, 0, 0, loc)

	// 22:30 UTC on the 18th is already the 19th at UTC+3
	performed := []time.Time{
		time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC),
		time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, Streak{Current: 2, Longest: 2}, CalculateStreak(performed, localNow))
}
