package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveGoalID accepts a full goal ID, an ID prefix, or an exact title
// (case-insensitive) among the current user's goals.
func resolveGoalID(ctx context.Context, a *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := a.Goals.List(ctx, a.userID())
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	// 2. ID prefix match
	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	// 3. Exact title match
	if len(matches) == 0 {
		for _, g := range goals {
			if strings.EqualFold(g.Title, input) {
				matches = append(matches, g.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal %q is ambiguous (%d matches)", input, len(matches))
	}
}

// goalTitles maps the user's goal IDs to titles for list rendering.
func goalTitles(ctx context.Context, a *App) (map[string]string, error) {
	goals, err := a.Goals.List(ctx, a.userID())
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(goals))
	for _, g := range goals {
		titles[g.ID] = g.Title
	}
	return titles, nil
}
