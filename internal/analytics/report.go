package analytics

// GoalProgress is one goal's rollup over one month.
type GoalProgress struct {
	GoalID              string          `json:"goalId"`
	GoalTitle           string          `json:"goalTitle"`
	TargetMinutesPerDay int             `json:"targetMinutesPerDay"`
	TotalMinutesSpent   int             `json:"totalMinutesSpent"`
	TotalTargetMinutes  int             `json:"totalTargetMinutes"`
	DaysInPeriod        int             `json:"daysInPeriod"`
	DaysTracked         int             `json:"daysTracked"`
	DaysTargetMet       int             `json:"daysTargetMet"`
	SuccessRate         float64         `json:"successRate"`
	DailyProgress       []DailyProgress `json:"dailyProgress,omitempty"`
	CurrentStreak       int             `json:"currentStreak"`
	LongestStreak       int             `json:"longestStreak"`
	LongestStreakStart  string          `json:"longestStreakStart,omitempty"`
	LongestStreakEnd    string          `json:"longestStreakEnd,omitempty"`
}

type MonthlyStats struct {
	TotalMinutesSpent  int     `json:"totalMinutesSpent"`
	TotalGoals         int     `json:"totalGoals"`
	AverageSuccessRate float64 `json:"averageSuccessRate"`
}

// MonthlyProgressReport is the per-user rollup of one month.
type MonthlyProgressReport struct {
	Month        string         `json:"month"`
	GoalProgress []GoalProgress `json:"goalProgress"`
	OverallStats MonthlyStats   `json:"overallStats"`
}

type GoalRate struct {
	GoalID      string  `json:"goalId"`
	GoalTitle   string  `json:"goalTitle"`
	SuccessRate float64 `json:"successRate"`
}

type MonthRate struct {
	Month       string  `json:"month"`
	SuccessRate float64 `json:"successRate"`
}

// MonthSummary condenses one monthly report inside a yearly summary.
type MonthSummary struct {
	Month              string    `json:"month"`
	TotalMinutesSpent  int       `json:"totalMinutesSpent"`
	SuccessRate        float64   `json:"successRate"`
	GoalsTracked       int       `json:"goalsTracked"`
	BestPerformingGoal *GoalRate `json:"bestPerformingGoal,omitempty"`
}

type YearlyStats struct {
	TotalMinutesSpent  int       `json:"totalMinutesSpent"`
	AverageSuccessRate float64   `json:"averageSuccessRate"`
	BestMonth          MonthRate `json:"bestMonth"`
	WorstMonth         MonthRate `json:"worstMonth"`
}

// YearlySummary is the per-user rollup of a calendar year. MonthlyData always
// holds twelve entries, January first.
type YearlySummary struct {
	Year         string         `json:"year"`
	MonthlyData  []MonthSummary `json:"monthlyData"`
	OverallStats YearlyStats    `json:"overallStats"`
}
