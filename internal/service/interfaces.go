package service

import (
	"context"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
)

// Every lookup is scoped to userID; records owned by someone else are
// reported as not found.

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, userID, id string) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, userID, id string, patch app.GoalPatch) (*domain.Goal, error)
	Delete(ctx context.Context, userID, id string) error
}

type ProgressService interface {
	app.RecordProgressUseCase
	GetByID(ctx context.Context, userID, id string) (*domain.ProgressEntry, error)
	// ListByGoal returns all of the goal's entries, or one month's when
	// month (YYYY-MM) is set.
	ListByGoal(ctx context.Context, userID, goalID, month string) ([]*domain.ProgressEntry, error)
	ListByMonth(ctx context.Context, userID, month string) ([]*domain.ProgressEntry, error)
	Update(ctx context.Context, userID, id string, patch app.ProgressPatch) (*domain.ProgressEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type SummaryService interface {
	app.MonthlySummaryUseCase
	app.YearlySummaryUseCase
}

type ImportService interface {
	app.ImportGoalsUseCase
}
