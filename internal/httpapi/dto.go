package httpapi

import (
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

type goalRequest struct {
	Title               string   `json:"title" binding:"required,max=200"`
	Description         string   `json:"description"`
	TargetMinutesPerDay int      `json:"targetMinutesPerDay" binding:"required"`
	StartDate           string   `json:"startDate" binding:"required"`
	EndDate             *string  `json:"endDate"`
	Tags                []string `json:"tags"`
}

// goalPatchRequest leaves absent fields unchanged. An empty tags array
// clears the tags; clearEndDate removes the end date.
type goalPatchRequest struct {
	Title               *string   `json:"title"`
	Description         *string   `json:"description"`
	TargetMinutesPerDay *int      `json:"targetMinutesPerDay"`
	StartDate           *string   `json:"startDate"`
	EndDate             *string   `json:"endDate"`
	ClearEndDate        bool      `json:"clearEndDate"`
	Tags                *[]string `json:"tags"`
}

type progressRequest struct {
	GoalID       string `json:"goalId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	MinutesSpent *int   `json:"minutesSpent" binding:"required"`
	Note         string `json:"note"`
}

type progressPatchRequest struct {
	Date         *string `json:"date"`
	MinutesSpent *int    `json:"minutesSpent"`
	Note         *string `json:"note"`
}

// parseOptionalDay parses s when set; nil in, nil out.
func parseOptionalDay(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := domain.ParseDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
