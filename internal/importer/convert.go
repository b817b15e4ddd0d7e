package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/google/uuid"
)

// GeneratedGoals holds the domain records built from an import file, in
// file order.
type GeneratedGoals struct {
	Goals    []*domain.Goal
	Progress []*domain.ProgressEntry
}

// Convert turns a validated ImportSchema into records owned by userID.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, userID string) (*GeneratedGoals, error) {
	now := time.Now().UTC()
	out := &GeneratedGoals{}

	for i, gi := range schema.Goals {
		start, err := domain.ParseDay(gi.StartDate)
		if err != nil {
			return nil, fmt.Errorf("goal %d: parsing start_date: %w", i, err)
		}
		var end *time.Time
		if gi.EndDate != nil {
			t, err := domain.ParseDay(*gi.EndDate)
			if err != nil {
				return nil, fmt.Errorf("goal %d: parsing end_date: %w", i, err)
			}
			end = &t
		}

		// keep file order stable when goals are later listed by creation time
		created := now.Add(time.Duration(i) * time.Microsecond)
		goal := &domain.Goal{
			ID:                  uuid.New().String(),
			UserID:              userID,
			Title:               gi.Title,
			Description:         gi.Description,
			TargetMinutesPerDay: gi.TargetMinutesPerDay,
			StartDate:           start,
			EndDate:             end,
			Tags:                domain.NormalizeTags(gi.Tags),
			CreatedAt:           created,
			UpdatedAt:           created,
		}
		out.Goals = append(out.Goals, goal)

		for j, pi := range gi.Progress {
			date, err := domain.ParseDay(pi.Date)
			if err != nil {
				return nil, fmt.Errorf("goal %d progress %d: parsing date: %w", i, j, err)
			}
			out.Progress = append(out.Progress, &domain.ProgressEntry{
				ID:           uuid.New().String(),
				GoalID:       goal.ID,
				Date:         date,
				MinutesSpent: pi.Minutes,
				Note:         pi.Note,
				TargetMet:    analytics.TargetMet(pi.Minutes, goal.TargetMinutesPerDay),
				CreatedAt:    created,
				UpdatedAt:    created,
			})
		}
	}
	return out, nil
}
