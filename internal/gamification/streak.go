// Package gamification derives streaks, achievements and levels from stored
// counts and login timestamps.
package gamification

import "time"

// NextStreak computes the consecutive-day login counter. It is a pure
// function of (lastLogin, now, current): no prior login starts a streak at
// 1, a repeat login on the same UTC day is a no-op, a login the day after
// the last one extends the streak, and any longer gap resets it to 1.
func NextStreak(lastLogin *time.Time, now time.Time, current int) int {
	if lastLogin == nil {
		return 1
	}

	lastDay := dateOf(lastLogin.UTC())
	today := dateOf(now.UTC())

	switch today.Sub(lastDay) {
	case 0:
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
