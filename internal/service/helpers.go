package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
)

// ownedGoal loads a goal and hides it from anyone but its owner.
func ownedGoal(ctx context.Context, goals repository.GoalRepo, userID, goalID string) (*domain.Goal, error) {
	g, err := goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, fmt.Errorf("goal: %w", repository.ErrNotFound)
	}
	return g, nil
}

// ownedProgress loads an entry together with its goal, checking ownership
// through the goal.
func ownedProgress(ctx context.Context, goals repository.GoalRepo, progress repository.ProgressRepo, userID, id string) (*domain.ProgressEntry, *domain.Goal, error) {
	p, err := progress.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	g, err := goals.GetByID(ctx, p.GoalID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, fmt.Errorf("progress entry: %w", repository.ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	if g.UserID != userID {
		return nil, nil, fmt.Errorf("progress entry: %w", repository.ErrNotFound)
	}
	return p, g, nil
}

func nothingToUpdate() error {
	return &domain.ValidationError{Problems: []string{"nothing to update"}}
}

func valuesOf[T any](ptrs []*T) []T {
	out := make([]T, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}
