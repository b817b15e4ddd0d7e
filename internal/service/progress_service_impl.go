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

type progressService struct {
	progress repository.ProgressRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProgressService(progress repository.ProgressRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProgressService {
	return &progressService{progress: progress, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Record stores a new entry after checking the goal belongs to userID. The
// target flag is derived from the goal; any value set by the caller is ignored.
func (s *progressService) Record(ctx context.Context, userID string, p *domain.ProgressEntry) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"goal_id": p.GoalID}
	defer func() {
		observe(ctx, s.observer, "progress.record", startedAt, fields, err)
	}()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if !p.Date.IsZero() {
		p.Date = domain.CalendarDay(p.Date)
	}
	p.CreatedAt = startedAt
	p.UpdatedAt = startedAt
	if err := p.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		g, err := ownedGoal(ctx, repository.NewSQLiteGoalRepo(tx), userID, p.GoalID)
		if err != nil {
			return err
		}
		p.TargetMet = analytics.TargetMet(p.MinutesSpent, g.TargetMinutesPerDay)
		fields["target_met"] = p.TargetMet
		return repository.NewSQLiteProgressRepo(tx).Create(ctx, p)
	})
}

func (s *progressService) GetByID(ctx context.Context, userID, id string) (entry *domain.ProgressEntry, err error) {
	err = s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		entry, _, err = ownedProgress(ctx, repository.NewSQLiteGoalRepo(tx), repository.NewSQLiteProgressRepo(tx), userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *progressService) ListByGoal(ctx context.Context, userID, goalID, month string) (entries []*domain.ProgressEntry, err error) {
	var window *analytics.Month
	if month != "" {
		m, err := analytics.ParseMonth(month)
		if err != nil {
			return nil, err
		}
		window = &m
	}

	err = s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := ownedGoal(ctx, repository.NewSQLiteGoalRepo(tx), userID, goalID); err != nil {
			return err
		}
		txProgress := repository.NewSQLiteProgressRepo(tx)
		if window == nil {
			entries, err = txProgress.ListByGoal(ctx, goalID)
		} else {
			entries, err = txProgress.ListByGoalBetween(ctx, goalID, window.Start(), window.End())
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *progressService) ListByMonth(ctx context.Context, userID, month string) ([]*domain.ProgressEntry, error) {
	m, err := analytics.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	return s.progress.ListByUserBetween(ctx, userID, m.Start(), m.End())
}

// Update edits an entry and re-derives its target flag against the goal's
// current target.
func (s *progressService) Update(ctx context.Context, userID, id string, patch app.ProgressPatch) (updated *domain.ProgressEntry, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "progress.update", startedAt, map[string]any{"progress_id": id}, err)
	}()

	if patch.Empty() {
		return nil, nothingToUpdate()
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		p, g, err := ownedProgress(ctx, repository.NewSQLiteGoalRepo(tx), txProgress, userID, id)
		if err != nil {
			return err
		}
		if patch.Date != nil {
			p.Date = domain.CalendarDay(*patch.Date)
		}
		if patch.MinutesSpent != nil {
			p.MinutesSpent = *patch.MinutesSpent
		}
		if patch.Note != nil {
			p.Note = *patch.Note
		}
		if err := p.Validate(); err != nil {
			return err
		}
		p.TargetMet = analytics.TargetMet(p.MinutesSpent, g.TargetMinutesPerDay)
		p.UpdatedAt = time.Now().UTC()
		if err := txProgress.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *progressService) Delete(ctx context.Context, userID, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "progress.delete", startedAt, map[string]any{"progress_id": id}, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		if _, _, err := ownedProgress(ctx, repository.NewSQLiteGoalRepo(tx), txProgress, userID, id); err != nil {
			return err
		}
		return txProgress.Delete(ctx, id)
	})
}
