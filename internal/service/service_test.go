package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/alexanderramin/goaltrack/internal/testutil"
)

func setupRepos(t *testing.T) (repository.GoalRepo, repository.ProgressRepo, db.UnitOfWork) {
	return setupReposOn(testutil.NewTestDB(t))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// countingUoW records how many transactions were opened. calls counts
// both kinds; reads counts only WithinReadTx.
type countingUoW struct {
	db.UnitOfWork
	calls int
	reads int
}

func (u *countingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.calls++
	return u.UnitOfWork.WithinTx(ctx, fn)
}

func (u *countingUoW) WithinReadTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.calls++
	u.reads++
	return u.UnitOfWork.WithinReadTx(ctx, fn)
}

func setupReposOn(database *sql.DB) (repository.GoalRepo, repository.ProgressRepo, db.UnitOfWork) {
	return repository.NewSQLiteGoalRepo(database),
		repository.NewSQLiteProgressRepo(database),
		testutil.NewTestUoW(database)
}
