package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGoal() *Goal {
	return &Goal{
		UserID:              "user-1",
		Title:               "Learn Spanish",
		TargetMinutesPerDay: 30,
		StartDate:           time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGoalValidate_Valid(t *testing.T) {
	assert.NoError(t, validGoal().Validate())
}

func TestGoalValidate_Messages(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(g *Goal)
		errorMsg string
	}{
		{"missing title", func(g *Goal) { g.Title = "" }, "title is required"},
		{"zero target minutes", func(g *Goal) { g.TargetMinutesPerDay = 0 }, "target minutes must be positive"},
		{"negative target minutes", func(g *Goal) { g.TargetMinutesPerDay = -10 }, "target minutes must be positive"},
		{"target above a day", func(g *Goal) { g.TargetMinutesPerDay = 2000 }, "target minutes must be at most 1440"},
		{"missing start date", func(g *Goal) { g.StartDate = time.Time{} }, "start date is required"},
		{"missing owner", func(g *Goal) { g.UserID = "" }, "user ID is required"},
		{"blank tag", func(g *Goal) { g.Tags = []string{"lang", ""} }, "tag is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGoal()
			tt.mutate(g)
			err := g.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestGoalValidate_EndBeforeStart(t *testing.T) {
	g := validGoal()
	end := g.StartDate.AddDate(0, 0, -1)
	g.EndDate = &end

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGoalValidate_EndSameDayAsStart(t *testing.T) {
	g := validGoal()
	end := g.StartDate.Add(3 * time.Hour)
	g.EndDate = &end
	assert.NoError(t, g.Validate())
}

func TestGoalActiveDuring(t *testing.T) {
	oct := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	nov := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	sep30 := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	oct31 := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	g := validGoal()
	assert.True(t, g.ActiveDuring(oct, nov))

	g.StartDate = nov
	assert.False(t, g.ActiveDuring(oct, nov), "goal starting next month is not active")

	g.StartDate = oct31
	assert.True(t, g.ActiveDuring(oct, nov), "goal starting on the last day is active")

	g.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	g.EndDate = &sep30
	assert.False(t, g.ActiveDuring(oct, nov), "goal ended last month is not active")

	g.StartDate = time.Time{}
	g.EndDate = nil
	assert.True(t, g.ActiveDuring(oct, nov), "zero start date is unbounded")
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"spanish", "language"}, NormalizeTags([]string{" Spanish", "language", "SPANISH", ""}))
	assert.Nil(t, NormalizeTags(nil))
}

func TestCalendarDay_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	local := time.Date(2025, 10, 2, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), CalendarDay(local))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-10-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("2025/10/03")
	assert.Error(t, err)
}

func TestProgressEntryValidate(t *testing.T) {
	p := &ProgressEntry{GoalID: "goal_123", Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), MinutesSpent: 0}
	assert.NoError(t, p.Validate(), "zero minutes is valid")

	p.MinutesSpent = -10
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minutes spent must be non-negative")

	p.MinutesSpent = 30
	p.GoalID = ""
	err = p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal ID is required")
}
