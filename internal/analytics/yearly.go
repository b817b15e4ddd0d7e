package analytics

import "github.com/alexanderramin/goaltrack/internal/domain"

// YearlyInput mirrors MonthlyInput for a whole calendar year.
type YearlyInput struct {
	Year    string
	Goals   []domain.Goal
	Entries []domain.ProgressEntry
	GoalID  string
	Options Options
}

// BuildYearlySummary runs the monthly aggregation for each month of in.Year
// and folds the twelve results.
func BuildYearlySummary(in YearlyInput) (*YearlySummary, error) {
	year, err := ParseYear(in.Year)
	if err != nil {
		return nil, err
	}
	opts, err := in.Options.normalize()
	if err != nil {
		return nil, err
	}
	if err := validateGoals(in.Goals); err != nil {
		return nil, err
	}

	goals := selectGoals(in.Goals, in.GoalID)
	byGoal := entriesByGoal(in.Entries)

	summary := &YearlySummary{
		Year:        in.Year,
		MonthlyData: make([]MonthSummary, 0, 12),
	}
	for _, m := range MonthsOf(year) {
		summary.MonthlyData = append(summary.MonthlyData, summarizeMonth(buildMonth(m, goals, byGoal, opts)))
	}
	summary.OverallStats = reduceMonths(summary.MonthlyData)
	return summary, nil
}

// summarizeMonth relies on GoalProgress being ordered by goal creation, so the
// first goal reaching the top rate is the earliest created.
func summarizeMonth(report *MonthlyProgressReport) MonthSummary {
	ms := MonthSummary{
		Month:             report.Month,
		TotalMinutesSpent: report.OverallStats.TotalMinutesSpent,
		SuccessRate:       report.OverallStats.AverageSuccessRate,
	}
	for _, gp := range report.GoalProgress {
		if gp.DaysTracked > 0 {
			ms.GoalsTracked++
		}
		if gp.SuccessRate <= 0 {
			continue
		}
		if ms.BestPerformingGoal == nil || gp.SuccessRate > ms.BestPerformingGoal.SuccessRate {
			ms.BestPerformingGoal = &GoalRate{
				GoalID:      gp.GoalID,
				GoalTitle:   gp.GoalTitle,
				SuccessRate: gp.SuccessRate,
			}
		}
	}
	return ms
}

// reduceMonths ignores months without data when averaging and when picking
// the best and worst month. Ties go to the earlier month.
func reduceMonths(months []MonthSummary) YearlyStats {
	var stats YearlyStats
	var rateSum float64
	var withData int
	for _, m := range months {
		stats.TotalMinutesSpent += m.TotalMinutesSpent
		if m.SuccessRate <= 0 {
			continue
		}
		rateSum += m.SuccessRate
		withData++
		if withData == 1 || m.SuccessRate > stats.BestMonth.SuccessRate {
			stats.BestMonth = MonthRate{Month: m.Month, SuccessRate: m.SuccessRate}
		}
		if withData == 1 || m.SuccessRate < stats.WorstMonth.SuccessRate {
			stats.WorstMonth = MonthRate{Month: m.Month, SuccessRate: m.SuccessRate}
		}
	}
	if withData > 0 {
		stats.AverageSuccessRate = rateSum / float64(withData)
	}
	return stats
}
