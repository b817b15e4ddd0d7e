package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar days.
const DateLayout = "2006-01-02"

type Goal struct {
	ID                  string
	UserID              string     `validate:"required"`
	Title               string     `validate:"required,max=200"`
	Description         string     `validate:"max=2000"`
	TargetMinutesPerDay int        `validate:"gte=1,lte=1440"`
	StartDate           time.Time  `validate:"required"`
	EndDate             *time.Time
	Tags                []string   `validate:"dive,required,max=40"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks field constraints and that EndDate is not before StartDate.
func (g *Goal) Validate() error {
	if err := validateStruct(g); err != nil {
		return err
	}
	if g.EndDate != nil && CalendarDay(*g.EndDate).Before(CalendarDay(g.StartDate)) {
		return &ValidationError{Problems: []string{fmt.Sprintf("end date %s is before start date %s",
			g.EndDate.Format(DateLayout), g.StartDate.Format(DateLayout))}}
	}
	return nil
}

// ActiveDuring reports whether the goal's date window overlaps [from, to).
// A zero StartDate is treated as unbounded.
func (g *Goal) ActiveDuring(from, to time.Time) bool {
	if !g.StartDate.IsZero() && !CalendarDay(g.StartDate).Before(to) {
		return false
	}
	if g.EndDate != nil && CalendarDay(*g.EndDate).Before(from) {
		return false
	}
	return true
}

// NormalizeTags trims, lower-cases and de-duplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// CalendarDay strips the time-of-day component, keeping the date as written
// in t's own location, and returns midnight UTC of that date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
