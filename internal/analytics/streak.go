package analytics

import (
	"sort"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

type StreakType string

const (
	StreakTargetMet        StreakType = "daily_target_met"
	StreakProgressRecorded StreakType = "daily_progress_recorded"
)

// Streaks holds the current and longest runs of consecutive qualifying days.
// LongestStart and LongestEnd are nil when there is no qualifying day.
type Streaks struct {
	Current      int
	Longest      int
	LongestStart *time.Time
	LongestEnd   *time.Time
}

// DetectStreaks computes streaks over dates, which may be unsorted and may
// repeat. The current streak is the run ending at the latest date on or before
// anchor, provided that date is the anchor day itself or the day before it.
// That one grace day keeps a streak alive while the anchor day is still
// unlogged; a run ending two or more days before anchor gives Current 0.
// Ties for the longest run go to the earliest run.
func DetectStreaks(dates []time.Time, anchor time.Time) Streaks {
	days := uniqueDays(dates)

	var s Streaks
	runStart := 0
	for i := range days {
		if i > 0 && !consecutive(days[i-1], days[i]) {
			runStart = i
		}
		if length := i - runStart + 1; length > s.Longest {
			start, end := days[runStart], days[i]
			s.Longest = length
			s.LongestStart = &start
			s.LongestEnd = &end
		}
	}
	s.Current = currentRun(days, domain.CalendarDay(anchor))
	return s
}

func currentRun(days []time.Time, anchor time.Time) int {
	// index of the last day on or before anchor
	last := sort.Search(len(days), func(i int) bool { return days[i].After(anchor) }) - 1
	if last < 0 {
		return 0
	}
	if days[last].Before(anchor.AddDate(0, 0, -1)) {
		return 0
	}
	run := 1
	for i := last; i > 0 && consecutive(days[i-1], days[i]); i-- {
		run++
	}
	return run
}

func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := domain.CalendarDay(d)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func consecutive(prev, next time.Time) bool {
	return prev.AddDate(0, 0, 1).Equal(next)
}

func qualifyingDates(days []dayTotal, streakType StreakType) []time.Time {
	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		if streakType == StreakTargetMet && !d.met {
			continue
		}
		dates = append(dates, d.day)
	}
	return dates
}
