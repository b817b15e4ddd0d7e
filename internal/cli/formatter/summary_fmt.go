package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/domain"
)

const rateBarWidth = 12

// FormatMonthlyReport renders a monthly report: one row per goal, a day
// strip per goal when daily progress is present, and the overall stats.
func FormatMonthlyReport(r *analytics.MonthlyProgressReport) string {
	if len(r.GoalProgress) == 0 {
		return RenderBox("Month "+r.Month, Dim("No active goals this month."))
	}

	headers := []string{"GOAL", "LOGGED", "TARGET", "TRACKED", "MET", "RATE", "STREAK", "BEST"}
	rows := make([][]string, 0, len(r.GoalProgress))
	for _, gp := range r.GoalProgress {
		rows = append(rows, []string{
			Bold(gp.GoalTitle),
			FormatMinutes(gp.TotalMinutesSpent),
			FormatMinutes(gp.TotalTargetMinutes),
			fmt.Sprintf("%d/%d", gp.DaysTracked, gp.DaysInPeriod),
			fmt.Sprintf("%d", gp.DaysTargetMet),
			RenderRateBar(gp.SuccessRate, rateBarWidth),
			Streak(gp.CurrentStreak),
			longestStreak(gp),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true}))

	for _, gp := range r.GoalProgress {
		if len(gp.DailyProgress) == 0 {
			continue
		}
		logged, met := dayMarks(gp.DailyProgress)
		fmt.Fprintf(&b, "\n%s  %s", RenderDayStrip(gp.DaysInPeriod, logged, met), Dim(gp.GoalTitle))
	}

	s := r.OverallStats
	fmt.Fprintf(&b, "\n%s %s   %s %d   %s %s",
		Dim("Total:"), Bold(FormatMinutes(s.TotalMinutesSpent)),
		Dim("Goals:"), s.TotalGoals,
		Dim("Average rate:"), FormatRate(s.AverageSuccessRate))
	return RenderBox("Month "+r.Month, b.String())
}

// FormatYearlySummary renders twelve month rows and the best and worst month.
func FormatYearlySummary(y *analytics.YearlySummary) string {
	headers := []string{"MONTH", "LOGGED", "GOALS", "RATE", "TOP GOAL"}
	rows := make([][]string, 0, len(y.MonthlyData))
	for _, m := range y.MonthlyData {
		top := Dim("--")
		if m.BestPerformingGoal != nil {
			top = fmt.Sprintf("%s %s", m.BestPerformingGoal.GoalTitle, FormatRate(m.BestPerformingGoal.SuccessRate))
		}
		rows = append(rows, []string{
			m.Month,
			FormatMinutes(m.TotalMinutesSpent),
			fmt.Sprintf("%d", m.GoalsTracked),
			RenderRateBar(m.SuccessRate, rateBarWidth),
			top,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, map[int]bool{1: true, 2: true}))

	s := y.OverallStats
	fmt.Fprintf(&b, "\n%s %s   %s %s", Dim("Total:"), Bold(FormatMinutes(s.TotalMinutesSpent)),
		Dim("Average rate:"), FormatRate(s.AverageSuccessRate))
	if s.BestMonth.Month == "" {
		b.WriteString("\n" + Dim("No progress logged this year."))
	} else {
		fmt.Fprintf(&b, "\n%s %s %s   %s %s %s",
			Dim("Best:"), s.BestMonth.Month, FormatRate(s.BestMonth.SuccessRate),
			Dim("Worst:"), s.WorstMonth.Month, FormatRate(s.WorstMonth.SuccessRate))
	}
	return RenderBox("Year "+y.Year, b.String())
}

func longestStreak(gp analytics.GoalProgress) string {
	if gp.LongestStreak == 0 {
		return Dim("--")
	}
	return fmt.Sprintf("%s %s", Streak(gp.LongestStreak), Dim(gp.LongestStreakStart+" → "+gp.LongestStreakEnd))
}

func dayMarks(days []analytics.DailyProgress) (logged, met map[int]bool) {
	logged = make(map[int]bool, len(days))
	met = make(map[int]bool, len(days))
	for _, d := range days {
		t, err := domain.ParseDay(d.Date)
		if err != nil {
			continue
		}
		logged[t.Day()] = true
		if d.TargetMet {
			met[t.Day()] = true
		}
	}
	return logged, met
}
