package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		points int
		level  int
		toNext int
	}{
		{0, 1, 100},
		{50, 1, 50},
		{99, 1, 1},
		{100, 1, 100},
		{250, 2, 50},
		{1000, 10, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, Level(tt.points), "points=%d", tt.points)
		assert.Equal(t, tt.toNext, PointsToNextLevel(tt.points), "points=%d", tt.points)
	}
}
