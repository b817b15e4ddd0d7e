package analytics

import (
	"sort"
	"strconv"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

// MonthlyInput is an already-fetched, already-authorized snapshot. Entries may
// cover more than the month; only those inside it are used.
type MonthlyInput struct {
	Month   string
	Goals   []domain.Goal
	Entries []domain.ProgressEntry
	// GoalID restricts the report to one goal. An unknown id yields an
	// empty report.
	GoalID  string
	Options Options
}

// BuildMonthlyReport computes the monthly progress report for in.Month.
func BuildMonthlyReport(in MonthlyInput) (*MonthlyProgressReport, error) {
	month, err := ParseMonth(in.Month)
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
	return buildMonth(month, goals, entriesByGoal(in.Entries), opts), nil
}

func buildMonth(month Month, goals []domain.Goal, byGoal map[string][]domain.ProgressEntry, opts Options) *MonthlyProgressReport {
	report := &MonthlyProgressReport{
		Month:        month.String(),
		GoalProgress: make([]GoalProgress, 0, len(goals)),
	}

	var rateSum float64
	for i := range goals {
		g := &goals[i]
		if !g.ActiveDuring(month.Start(), month.End()) && !anyEntryIn(byGoal[g.ID], month) {
			continue
		}
		gp := computeGoalProgress(g, byGoal[g.ID], month, opts)
		report.GoalProgress = append(report.GoalProgress, gp)
		report.OverallStats.TotalMinutesSpent += gp.TotalMinutesSpent
		rateSum += gp.SuccessRate
	}

	report.OverallStats.TotalGoals = len(report.GoalProgress)
	if report.OverallStats.TotalGoals > 0 {
		report.OverallStats.AverageSuccessRate = rateSum / float64(report.OverallStats.TotalGoals)
	}
	return report
}

// anyEntryIn reports whether any entry falls inside month. A goal with such
// an entry is reported even when its window does not cover the month.
func anyEntryIn(entries []domain.ProgressEntry, month Month) bool {
	for _, e := range entries {
		if month.Contains(domain.CalendarDay(e.Date)) {
			return true
		}
	}
	return false
}

func computeGoalProgress(g *domain.Goal, entries []domain.ProgressEntry, month Month, opts Options) GoalProgress {
	var inMonth []domain.ProgressEntry
	for _, e := range entries {
		if month.Contains(domain.CalendarDay(e.Date)) {
			inMonth = append(inMonth, e)
		}
	}

	days := groupByDay(inMonth, g.TargetMinutesPerDay)
	totalMinutes, daysTracked := MonthlyTotals(inMonth)

	var daysMet int
	switch opts.DayPolicy {
	case DayPolicyCountEntries:
		for _, e := range inMonth {
			if TargetMet(e.MinutesSpent, g.TargetMinutesPerDay) {
				daysMet++
			}
		}
	default:
		daysTracked = len(days)
		for _, d := range days {
			if d.met {
				daysMet++
			}
		}
	}

	daysInPeriod := month.Days()
	rateDays := daysTracked
	if opts.SuccessMetric == MetricDaysTargetMet {
		rateDays = daysMet
	}

	streaks := DetectStreaks(qualifyingDates(days, opts.StreakType), opts.anchorFor(month))

	gp := GoalProgress{
		GoalID:              g.ID,
		GoalTitle:           g.Title,
		TargetMinutesPerDay: g.TargetMinutesPerDay,
		TotalMinutesSpent:   totalMinutes,
		TotalTargetMinutes:  g.TargetMinutesPerDay * daysInPeriod,
		DaysInPeriod:        daysInPeriod,
		DaysTracked:         daysTracked,
		DaysTargetMet:       daysMet,
		SuccessRate:         SuccessRate(rateDays, daysInPeriod),
		CurrentStreak:       streaks.Current,
		LongestStreak:       streaks.Longest,
	}
	if streaks.LongestStart != nil {
		gp.LongestStreakStart = streaks.LongestStart.Format(domain.DateLayout)
		gp.LongestStreakEnd = streaks.LongestEnd.Format(domain.DateLayout)
	}
	if opts.IncludeDailyProgress && len(inMonth) > 0 {
		gp.DailyProgress = GroupByDay(inMonth, g.TargetMinutesPerDay)
	}
	return gp
}

func validateGoals(goals []domain.Goal) error {
	for _, g := range goals {
		if g.TargetMinutesPerDay < 1 {
			return invalid("targetMinutesPerDay", strconv.Itoa(g.TargetMinutesPerDay), "goal %s must target at least 1 minute per day", g.ID)
		}
		if g.EndDate != nil && !g.StartDate.IsZero() && domain.CalendarDay(*g.EndDate).Before(domain.CalendarDay(g.StartDate)) {
			return invalid("endDate", g.EndDate.Format(domain.DateLayout), "goal %s ends before it starts", g.ID)
		}
	}
	return nil
}

// selectGoals applies the optional id filter and orders goals by creation,
// then id, so reports are deterministic.
func selectGoals(goals []domain.Goal, goalID string) []domain.Goal {
	selected := make([]domain.Goal, 0, len(goals))
	for _, g := range goals {
		if goalID != "" && g.ID != goalID {
			continue
		}
		selected = append(selected, g)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if !selected[i].CreatedAt.Equal(selected[j].CreatedAt) {
			return selected[i].CreatedAt.Before(selected[j].CreatedAt)
		}
		return selected[i].ID < selected[j].ID
	})
	return selected
}

func entriesByGoal(entries []domain.ProgressEntry) map[string][]domain.ProgressEntry {
	grouped := make(map[string][]domain.ProgressEntry)
	for _, e := range entries {
		grouped[e.GoalID] = append(grouped[e.GoalID], e)
	}
	return grouped
}
