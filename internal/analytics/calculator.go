package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

// SuccessRate returns daysTracked as a percentage of daysInPeriod, capped at
// 100. A zero-length period yields 0.
func SuccessRate(daysTracked, daysInPeriod int) float64 {
	if daysInPeriod <= 0 || daysTracked <= 0 {
		return 0
	}
	rate := float64(daysTracked) / float64(daysInPeriod) * 100
	return math.Min(rate, 100)
}

// TargetMet reports whether minutesSpent reaches the daily target.
func TargetMet(minutesSpent, targetMinutesPerDay int) bool {
	return minutesSpent >= targetMinutesPerDay
}

// MonthlyTotals sums minutes across entries and counts one tracked day per entry.
func MonthlyTotals(entries []domain.ProgressEntry) (totalMinutes int, daysTracked int) {
	for _, e := range entries {
		totalMinutes += e.MinutesSpent
	}
	return totalMinutes, len(entries)
}

// DailyProgress is the merged progress of one goal on one calendar day.
type DailyProgress struct {
	Date         string `json:"date"`
	MinutesSpent int    `json:"minutesSpent"`
	TargetMet    bool   `json:"targetMet"`
	Entries      int    `json:"entries"`
}

// GroupByDay merges entries sharing a calendar day, summing their minutes and
// judging the target against the merged total. The result is ordered by date.
func GroupByDay(entries []domain.ProgressEntry, targetMinutesPerDay int) []DailyProgress {
	days := groupByDay(entries, targetMinutesPerDay)
	out := make([]DailyProgress, len(days))
	for i, d := range days {
		out[i] = DailyProgress{
			Date:         d.day.Format(domain.DateLayout),
			MinutesSpent: d.minutes,
			TargetMet:    d.met,
			Entries:      d.entries,
		}
	}
	return out
}

type dayTotal struct {
	day     time.Time
	minutes int
	entries int
	met     bool
}

func groupByDay(entries []domain.ProgressEntry, target int) []dayTotal {
	index := make(map[time.Time]int, len(entries))
	var days []dayTotal
	for _, e := range entries {
		day := domain.CalendarDay(e.Date)
		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, dayTotal{day: day})
		}
		days[i].minutes += e.MinutesSpent
		days[i].entries++
	}
	for i := range days {
		days[i].met = TargetMet(days[i].minutes, target)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })
	return days
}
