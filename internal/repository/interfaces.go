package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

// ProgressRepo date bounds are half-open: from is included, to is not.
type ProgressRepo interface {
	Create(ctx context.Context, p *domain.ProgressEntry) error
	GetByID(ctx context.Context, id string) (*domain.ProgressEntry, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.ProgressEntry, error)
	ListByGoalBetween(ctx context.Context, goalID string, from, to time.Time) ([]*domain.ProgressEntry, error)
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.ProgressEntry, error)
	Update(ctx context.Context, p *domain.ProgressEntry) error
	Delete(ctx context.Context, id string) error
}
