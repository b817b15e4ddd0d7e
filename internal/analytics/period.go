package analytics

import (
	"fmt"
	"time"
)

const (
	MonthLayout = "2006-01"
	YearLayout  = "2006"
)

// Month identifies one calendar month. Its window is [Start, End).
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a strict YYYY-MM identifier.
func ParseMonth(s string) (Month, error) {
	if len(s) != len(MonthLayout) || s[4] != '-' || !allDigits(s[:4]) || !allDigits(s[5:]) {
		return Month{}, invalid("month", s, "expected YYYY-MM")
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, invalid("month", s, "month must be between 01 and 12")
	}
	if t.Year() < 1 {
		return Month{}, invalid("month", s, "year must be at least 0001")
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// ParseYear parses a strict four-digit YYYY identifier.
func ParseYear(s string) (int, error) {
	if len(s) != len(YearLayout) || !allDigits(s) {
		return 0, invalid("year", s, "expected YYYY")
	}
	t, err := time.Parse(YearLayout, s)
	if err != nil || t.Year() < 1 {
		return 0, invalid("year", s, "year must be at least 0001")
	}
	return t.Year(), nil
}

// MonthsOf returns the twelve months of year in calendar order.
func MonthsOf(year int) []Month {
	months := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, Month{Year: year, Month: m})
	}
	return months
}

func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first day of the following month (exclusive bound).
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

func (m Month) LastDay() time.Time {
	return m.End().AddDate(0, 0, -1)
}

// Days is the number of calendar days in the month (28–31).
func (m Month) Days() int {
	return m.LastDay().Day()
}

func (m Month) Contains(day time.Time) bool {
	return !day.Before(m.Start()) && day.Before(m.End())
}

// Add shifts m by n months, backwards when n is negative.
func (m Month) Add(n int) Month {
	t := m.Start().AddDate(0, n, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
