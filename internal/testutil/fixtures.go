package testutil

import (
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/google/uuid"
)

const TestUserID = "user-1"

// Goal options
type GoalOption func(*domain.Goal)

func WithUser(userID string) GoalOption {
	return func(g *domain.Goal) {
		g.UserID = userID
	}
}

func WithTarget(minutes int) GoalOption {
	return func(g *domain.Goal) {
		g.TargetMinutesPerDay = minutes
	}
}

func WithStartDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.StartDate = d
	}
}

func WithEndDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.EndDate = &d
	}
}

func WithTags(tags ...string) GoalOption {
	return func(g *domain.Goal) {
		g.Tags = tags
	}
}

func WithDescription(desc string) GoalOption {
	return func(g *domain.Goal) {
		g.Description = desc
	}
}

func WithCreatedAt(t time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.CreatedAt = t
		g.UpdatedAt = t
	}
}

// NewTestGoal builds a 30-minute goal for TestUserID starting on 2024-01-01.
func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:                  uuid.New().String(),
		UserID:              TestUserID,
		Title:               title,
		TargetMinutesPerDay: 30,
		StartDate:           Day(2024, time.January, 1),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Progress options
type ProgressOption func(*domain.ProgressEntry)

func WithNote(note string) ProgressOption {
	return func(p *domain.ProgressEntry) {
		p.Note = note
	}
}

func WithTargetMet(met bool) ProgressOption {
	return func(p *domain.ProgressEntry) {
		p.TargetMet = met
	}
}

func NewTestProgress(goalID string, date time.Time, minutes int, opts ...ProgressOption) *domain.ProgressEntry {
	now := time.Now().UTC()
	p := &domain.ProgressEntry{
		ID:           uuid.New().String(),
		GoalID:       goalID,
		Date:         domain.CalendarDay(date),
		MinutesSpent: minutes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Day is shorthand for a UTC calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
