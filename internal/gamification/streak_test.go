package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	threeDaysAgo := now.Add(-72 * time.Hour)
	sameDayEarlier := time.Date(2025, 3, 15, 0, 5, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastLogin *time.Time
		current   int
		expected  int
	}{
		{
			name:      "no prior login starts at one",
			lastLogin: nil,
			current:   0,
			expected:  1,
		},
		{
			name:      "same day is a no-op",
			lastLogin: &sameDayEarlier,
			current:   5,
			expected:  5,
		},
		{
			name:      "consecutive day extends",
			lastLogin: &yesterday,
			current:   5,
			expected:  6,
		},
		{
			name:      "gap resets to one",
			lastLogin: &threeDaysAgo,
			current:   12,
			expected:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextStreak(tt.lastLogin, now, tt.current))
		})
	}
}

func TestNextStreakUsesUTCDayBoundaries(t *testing.T) {
	// 23:50 and 00:10 around midnight UTC are different days even though
	// only 20 minutes apart.
	last := time.Date(2025, 3, 14, 23, 50, 0, 0, time.UTC)
	now := time.Date(2025, 3, 15, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 4, NextStreak(&last, now, 3))

	// A non-UTC timestamp is normalized before comparison.
	est := time.FixedZone("EST", -5*3600)
	lastEST := time.Date(2025, 3, 14, 20, 0, 0, 0, est) // 2025-03-15 01:00 UTC
	assert.Equal(t, 3, NextStreak(&lastEST, now, 3))
}

func TestNextStreakRepeatedLoginIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	streak := NextStreak(nil, now, 0)
	assert.Equal(t, 1, streak)

	later := now.Add(2 * time.Hour)
	assert.Equal(t, streak, NextStreak(&now, later, streak))
}
