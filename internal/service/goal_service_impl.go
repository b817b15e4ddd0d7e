package service

import (
	"context"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	goals    repository.GoalRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, uow db.UnitOfWork, observers ...UseCaseObserver) GoalService {
	return &goalService{goals: goals, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "goal.create", startedAt, map[string]any{"goal_id": g.ID}, err)
	}()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = startedAt
	g.UpdatedAt = startedAt
	normalizeGoal(g)
	if err := g.Validate(); err != nil {
		return err
	}
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, userID, id string) (*domain.Goal, error) {
	return ownedGoal(ctx, s.goals, userID, id)
}

func (s *goalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.goals.ListByUser(ctx, userID)
}

// Update applies patch and, when the daily target changes, re-derives the
// target flag of every stored entry of the goal in the same transaction.
func (s *goalService) Update(ctx context.Context, userID, id string, patch app.GoalPatch) (updated *domain.Goal, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"goal_id": id}
	defer func() {
		observe(ctx, s.observer, "goal.update", startedAt, fields, err)
	}()

	if patch.Empty() {
		return nil, nothingToUpdate()
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txProgress := repository.NewSQLiteProgressRepo(tx)

		g, err := ownedGoal(ctx, txGoals, userID, id)
		if err != nil {
			return err
		}
		oldTarget := g.TargetMinutesPerDay
		applyGoalPatch(g, patch)
		normalizeGoal(g)
		if err := g.Validate(); err != nil {
			return err
		}
		g.UpdatedAt = time.Now().UTC()
		if err := txGoals.Update(ctx, g); err != nil {
			return err
		}

		if g.TargetMinutesPerDay != oldTarget {
			n, err := refreshTargetMet(ctx, txProgress, g)
			if err != nil {
				return err
			}
			fields["entries_refreshed"] = n
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the goal; its entries go with it through the foreign key.
func (s *goalService) Delete(ctx context.Context, userID, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "goal.delete", startedAt, map[string]any{"goal_id": id}, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		if _, err := ownedGoal(ctx, txGoals, userID, id); err != nil {
			return err
		}
		return txGoals.Delete(ctx, id)
	})
}

func applyGoalPatch(g *domain.Goal, p app.GoalPatch) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TargetMinutesPerDay != nil {
		g.TargetMinutesPerDay = *p.TargetMinutesPerDay
	}
	if p.StartDate != nil {
		g.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		g.EndDate = &end
	}
	if p.ClearEndDate {
		g.EndDate = nil
	}
	if p.Tags != nil {
		g.Tags = p.Tags
	}
	if p.ClearTags {
		g.Tags = nil
	}
}

func normalizeGoal(g *domain.Goal) {
	if !g.StartDate.IsZero() {
		g.StartDate = domain.CalendarDay(g.StartDate)
	}
	if g.EndDate != nil {
		end := domain.CalendarDay(*g.EndDate)
		g.EndDate = &end
	}
	g.Tags = domain.NormalizeTags(g.Tags)
}

func refreshTargetMet(ctx context.Context, progress repository.ProgressRepo, g *domain.Goal) (int, error) {
	entries, err := progress.ListByGoal(ctx, g.ID)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, e := range entries {
		met := analytics.TargetMet(e.MinutesSpent, g.TargetMinutesPerDay)
		if met == e.TargetMet {
			continue
		}
		e.TargetMet = met
		e.UpdatedAt = g.UpdatedAt
		if err := progress.Update(ctx, e); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}
