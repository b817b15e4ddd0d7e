package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

const maxMinutesPerDay = 24 * 60

// ValidateImportSchema checks the whole file before conversion and returns
// every problem found rather than stopping at the first.
func ValidateImportSchema(schema *ImportSchema) []error {
	if len(schema.Goals) == 0 {
		return []error{fmt.Errorf("goals: at least one goal is required")}
	}

	var errs []error
	refs := make(map[string]bool)
	for i := range schema.Goals {
		g := &schema.Goals[i]
		label := goalLabel(i, g)
		if g.Ref != "" {
			if refs[g.Ref] {
				errs = append(errs, fmt.Errorf("%s: duplicate ref %q", label, g.Ref))
			}
			refs[g.Ref] = true
		}
		errs = append(errs, validateGoal(label, g)...)
	}
	return errs
}

func goalLabel(i int, g *GoalImport) string {
	if g.Ref != "" {
		return fmt.Sprintf("goals[%d] (%s)", i, g.Ref)
	}
	return fmt.Sprintf("goals[%d]", i)
}

func validateGoal(label string, g *GoalImport) []error {
	var errs []error

	if strings.TrimSpace(g.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", label))
	}
	if g.TargetMinutesPerDay <= 0 {
		errs = append(errs, fmt.Errorf("%s.target_minutes_per_day must be positive", label))
	} else if g.TargetMinutesPerDay > maxMinutesPerDay {
		errs = append(errs, fmt.Errorf("%s.target_minutes_per_day must be at most %d", label, maxMinutesPerDay))
	}

	var start *time.Time
	if g.StartDate == "" {
		errs = append(errs, fmt.Errorf("%s.start_date is required", label))
	} else if t, err := domain.ParseDay(g.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("%s.start_date: %w", label, err))
	} else {
		start = &t
	}
	if g.EndDate != nil {
		end, err := domain.ParseDay(*g.EndDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.end_date: %w", label, err))
		} else if start != nil && end.Before(*start) {
			errs = append(errs, fmt.Errorf("%s.end_date %q must not be before start_date %q", label, *g.EndDate, g.StartDate))
		}
	}

	for j, tag := range g.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, fmt.Errorf("%s.tags[%d] must not be empty", label, j))
		}
	}

	for j, p := range g.Progress {
		plabel := fmt.Sprintf("%s.progress[%d]", label, j)
		if p.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", plabel))
		} else if _, err := domain.ParseDay(p.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: %w", plabel, err))
		}
		if p.Minutes < 0 {
			errs = append(errs, fmt.Errorf("%s.minutes must be non-negative", plabel))
		} else if p.Minutes > maxMinutesPerDay {
			errs = append(errs, fmt.Errorf("%s.minutes must be at most %d", plabel, maxMinutesPerDay))
		}
	}
	return errs
}
