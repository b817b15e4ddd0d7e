package app

import "time"

// GoalPatch carries the fields an edit changes. Nil fields are left alone.
type GoalPatch struct {
	Title               *string
	Description         *string
	TargetMinutesPerDay *int
	StartDate           *time.Time
	EndDate             *time.Time
	ClearEndDate        bool
	Tags                []string
	ClearTags           bool
}

func (p GoalPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.TargetMinutesPerDay == nil &&
		p.StartDate == nil && p.EndDate == nil && !p.ClearEndDate && p.Tags == nil && !p.ClearTags
}

type ProgressPatch struct {
	Date         *time.Time
	MinutesSpent *int
	Note         *string
}

func (p ProgressPatch) Empty() bool {
	return p.Date == nil && p.MinutesSpent == nil && p.Note == nil
}
