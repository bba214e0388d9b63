package gamification

// Challenge is a catalogue entry users make progress against. Unlike
// achievements, challenges have a visible progress/target pair.
type Challenge struct {
	Code        string
	Title       string
	Description string
	Target      int
	Reward      int
	Metric      func(Stats) int
}

// Challenges is the fixed challenge catalogue.
var Challenges = []Challenge{
	{
		Code:        "log-10-expenses",
		Title:       "Getting Consistent",
		Description: "Log 10 expenses",
		Target:      10,
		Reward:      50,
		Metric:      func(s Stats) int { return int(s.Expenses) },
	},
	{
		Code:        "three-budgets",
		Title:       "Planner",
		Description: "Run budgets in 3 categories",
		Target:      3,
		Reward:      75,
		Metric:      func(s Stats) int { return int(s.Budgets) },
	},
	{
		Code:        "streak-14",
		Title:       "Two Week Habit",
		Description: "Keep a 14-day login streak",
		Target:      14,
		Reward:      150,
		Metric:      func(s Stats) int { return s.StreakDays },
	},
}
