package domain

import "time"

// ProgressEntry records the minutes spent on a goal on one calendar day.
// TargetMet is derived from the goal's target when the entry is written.
type ProgressEntry struct {
	ID           string
	GoalID       string    `validate:"required"`
	Date         time.Time `validate:"required"`
	MinutesSpent int       `validate:"gte=0,lte=1440"`
	Note         string    `validate:"max=1000"`
	TargetMet    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *ProgressEntry) Validate() error {
	return validateStruct(p)
}
