package gamification

// Stats is the point-in-time snapshot a rule is evaluated against.
type Stats struct {
	Expenses    int64
	Budgets     int64
	Investments int64
	StreakDays  int
}

// Rule is one achievement definition. Code is the stable identity used for
// deduplication; rules are independent, so evaluation order never changes
// the outcome.
type Rule struct {
	Code        string
	Title       string
	Description string
	Icon        string
	Category    string
	Points      int
	Condition   func(Stats) bool
}

// Rules is the fixed achievement catalogue.
var Rules = []Rule{
	{
		Code:        "first-expense",
		Title:       "First Steps",
		Description: "Record your first expense",
		Icon:        "🎯",
		Category:    "expenses",
		Points:      10,
		Condition:   func(s Stats) bool { return s.Expenses >= 1 },
	},
	{
		Code:        "budget-creator",
		Title:       "Budget Master",
		Description: "Create your first budget",
		Icon:        "👑",
		Category:    "budgeting",
		Points:      100,
		Condition:   func(s Stats) bool { return s.Budgets >= 1 },
	},
	{
		Code:        "tracking-enthusiast",
		Title:       "Tracking Enthusiast",
		Description: "Log 30 expenses",
		Icon:        "⚡",
		Category:    "expenses",
		Points:      150,
		Condition:   func(s Stats) bool { return s.Expenses >= 30 },
	},
	{
		Code:        "budget-boss",
		Title:       "Budget Boss",
		Description: "Create 5 different category budgets",
		Icon:        "🏦",
		Category:    "budgeting",
		Points:      200,
		Condition:   func(s Stats) bool { return s.Budgets >= 5 },
	},
	{
		Code:        "investment-pioneer",
		Title:       "Investment Pioneer",
		Description: "Add your first investment",
		Icon:        "📈",
		Category:    "investments",
		Points:      200,
		Condition:   func(s Stats) bool { return s.Investments >= 1 },
	},
	{
		Code:        "week-warrior",
		Title:       "Week Warrior",
		Description: "Log in 7 days in a row",
		Icon:        "🔥",
		Category:    "general",
		Points:      100,
		Condition:   func(s Stats) bool { return s.StreakDays >= 7 },
	},
	{
		Code:        "month-champion",
		Title:       "Month Champion",
		Description: "Keep a 30-day login streak alive",
		Icon:        "🏆",
		Category:    "general",
		Points:      500,
		Condition:   func(s Stats) bool { return s.StreakDays >= 30 },
	},
}
