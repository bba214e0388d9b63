package gamification

// Level is derived from points alone; nothing stores it. One level per 100
// points, clamped to a minimum of 1.
func Level(points int) int {
	level := points / 100
	if level < 1 {
		return 1
	}
	return level
}

// PointsToNextLevel is how many points remain until the next level boundary.
func PointsToNextLevel(points int) int {
	return 100 - points%100
}
