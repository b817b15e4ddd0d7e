package app

import (
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

// GoalView is the JSON shape of a goal shared by the HTTP API and the CLI.
type GoalView struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	TargetMinutesPerDay int       `json:"targetMinutesPerDay"`
	StartDate           string    `json:"startDate"`
	EndDate             string    `json:"endDate,omitempty"`
	Tags                []string  `json:"tags"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func NewGoalView(g *domain.Goal) GoalView {
	v := GoalView{
		ID:                  g.ID,
		UserID:              g.UserID,
		Title:               g.Title,
		Description:         g.Description,
		TargetMinutesPerDay: g.TargetMinutesPerDay,
		StartDate:           g.StartDate.Format(domain.DateLayout),
		Tags:                g.Tags,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if g.EndDate != nil {
		v.EndDate = g.EndDate.Format(domain.DateLayout)
	}
	return v
}

func NewGoalViews(goals []*domain.Goal) []GoalView {
	out := make([]GoalView, len(goals))
	for i, g := range goals {
		out[i] = NewGoalView(g)
	}
	return out
}

type ProgressView struct {
	ID           string    `json:"id"`
	GoalID       string    `json:"goalId"`
	Date         string    `json:"date"`
	MinutesSpent int       `json:"minutesSpent"`
	Note         string    `json:"note,omitempty"`
	TargetMet    bool      `json:"targetMet"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewProgressView(p *domain.ProgressEntry) ProgressView {
	return ProgressView{
		ID:           p.ID,
		GoalID:       p.GoalID,
		Date:         p.Date.Format(domain.DateLayout),
		MinutesSpent: p.MinutesSpent,
		Note:         p.Note,
		TargetMet:    p.TargetMet,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewProgressViews(entries []*domain.ProgressEntry) []ProgressView {
	out := make([]ProgressView, len(entries))
	for i, p := range entries {
		out[i] = NewProgressView(p)
	}
	return out
}
