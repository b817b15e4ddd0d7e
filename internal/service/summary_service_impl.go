package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
)

type summaryService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewSummaryService(uow db.UnitOfWork, observers ...UseCaseObserver) SummaryService {
	return &summaryService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *summaryService) Monthly(ctx context.Context, req app.MonthlySummaryRequest) (report *analytics.MonthlyProgressReport, err error) {
	startedAt := s.now()
	fields := map[string]any{"month": req.Month}
	if req.GoalID != "" {
		fields["goal_id"] = req.GoalID
	}
	defer func() {
		observe(ctx, s.observer, "summary.monthly", startedAt, fields, err)
	}()

	// reject a bad period before touching the database
	month, err := analytics.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	goals, entries, err := s.snapshot(ctx, req.UserID, req.GoalID, month.Start(), month.End())
	if err != nil {
		return nil, err
	}

	report, err = analytics.BuildMonthlyReport(analytics.MonthlyInput{
		Month:   req.Month,
		Goals:   goals,
		Entries: entries,
		GoalID:  req.GoalID,
		Options: req.Options(startedAt),
	})
	if err != nil {
		return nil, err
	}
	fields["goals"] = report.OverallStats.TotalGoals
	return report, nil
}

func (s *summaryService) Yearly(ctx context.Context, req app.YearlySummaryRequest) (summary *analytics.YearlySummary, err error) {
	startedAt := s.now()
	fields := map[string]any{"year": req.Year}
	if req.GoalID != "" {
		fields["goal_id"] = req.GoalID
	}
	defer func() {
		observe(ctx, s.observer, "summary.yearly", startedAt, fields, err)
	}()

	year, err := analytics.ParseYear(req.Year)
	if err != nil {
		return nil, err
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	goals, entries, err := s.snapshot(ctx, req.UserID, req.GoalID, from, from.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}

	summary, err = analytics.BuildYearlySummary(analytics.YearlyInput{
		Year:    req.Year,
		Goals:   goals,
		Entries: entries,
		GoalID:  req.GoalID,
		Options: req.Options(startedAt),
	})
	if err != nil {
		return nil, err
	}
	fields["minutes"] = summary.OverallStats.TotalMinutesSpent
	return summary, nil
}

// snapshot reads the user's goals and their entries in [from, to) from one
// read-only transaction. A goal filter naming a missing or foreign goal yields no
// goals, so the report comes back empty rather than failing.
func (s *summaryService) snapshot(ctx context.Context, userID, goalID string, from, to time.Time) (goals []domain.Goal, entries []domain.ProgressEntry, err error) {
	err = s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txProgress := repository.NewSQLiteProgressRepo(tx)

		if goalID != "" {
			g, err := ownedGoal(ctx, txGoals, userID, goalID)
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			rows, err := txProgress.ListByGoalBetween(ctx, goalID, from, to)
			if err != nil {
				return err
			}
			goals = []domain.Goal{*g}
			entries = valuesOf(rows)
			return nil
		}

		owned, err := txGoals.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		rows, err := txProgress.ListByUserBetween(ctx, userID, from, to)
		if err != nil {
			return err
		}
		goals = valuesOf(owned)
		entries = valuesOf(rows)
		return nil
	})
	return goals, entries, err
}
