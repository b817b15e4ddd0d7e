package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/alexanderramin/goaltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProgress_DerivesTargetMet(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewProgressService(progress, uow, obs)
	ctx := context.Background()

	g := testutil.NewTestGoal("Guitar", testutil.WithTarget(30))
	require.NoError(t, goals.Create(ctx, g))

	met := &domain.ProgressEntry{GoalID: g.ID, Date: time.Date(2024, 10, 1, 21, 15, 0, 0, time.UTC), MinutesSpent: 30}
	short := &domain.ProgressEntry{GoalID: g.ID, Date: testutil.Day(2024, time.October, 2), MinutesSpent: 10, TargetMet: true}
	require.NoError(t, svc.Record(ctx, testutil.TestUserID, met))
	require.NoError(t, svc.Record(ctx, testutil.TestUserID, short))

	assert.NotEmpty(t, met.ID)
	assert.Equal(t, testutil.Day(2024, time.October, 1), met.Date)
	assert.True(t, met.TargetMet)
	assert.False(t, short.TargetMet, "caller-supplied flag is recomputed")

	stored, err := progress.GetByID(ctx, short.ID)
	require.NoError(t, err)
	assert.False(t, stored.TargetMet)

	ev := obs.last()
	assert.Equal(t, "progress.record", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, false, ev.Fields["target_met"])
}

func TestRecordProgress_RejectsForeignGoal(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	svc := NewProgressService(progress, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Theirs", testutil.WithUser("someone-else"))
	require.NoError(t, goals.Create(ctx, g))

	err := svc.Record(ctx, testutil.TestUserID, &domain.ProgressEntry{GoalID: g.ID, Date: testutil.Day(2024, time.May, 1), MinutesSpent: 5})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	entries, err := progress.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordProgress_RejectsInvalidEntry(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	uowSpy := &countingUoW{UnitOfWork: uow}
	svc := NewProgressService(progress, uowSpy)
	ctx := context.Background()

	g := testutil.NewTestGoal("Swim")
	require.NoError(t, goals.Create(ctx, g))

	err := svc.Record(ctx, testutil.TestUserID, &domain.ProgressEntry{GoalID: g.ID, Date: testutil.Day(2024, time.May, 1), MinutesSpent: -5})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Problems, "minutes spent must be non-negative")

	err = svc.Record(ctx, testutil.TestUserID, &domain.ProgressEntry{GoalID: g.ID, MinutesSpent: 5})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Problems, "date is required")
	assert.Zero(t, uowSpy.calls)
}

func TestListProgress_ByGoalAndMonth(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	svc := NewProgressService(progress, uow)
	ctx := context.Background()

	mine := testutil.NewTestGoal("Mine")
	other := testutil.NewTestGoal("Other", testutil.WithUser("someone-else"))
	require.NoError(t, goals.Create(ctx, mine))
	require.NoError(t, goals.Create(ctx, other))

	for _, p := range []*domain.ProgressEntry{
		testutil.NewTestProgress(mine.ID, testutil.Day(2024, time.September, 30), 10),
		testutil.NewTestProgress(mine.ID, testutil.Day(2024, time.October, 1), 20),
		testutil.NewTestProgress(mine.ID, testutil.Day(2024, time.October, 31), 30),
		testutil.NewTestProgress(other.ID, testutil.Day(2024, time.October, 15), 40),
	} {
		require.NoError(t, progress.Create(ctx, p))
	}

	all, err := svc.ListByGoal(ctx, testutil.TestUserID, mine.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	october, err := svc.ListByGoal(ctx, testutil.TestUserID, mine.ID, "2024-10")
	require.NoError(t, err)
	require.Len(t, october, 2)
	assert.Equal(t, 20, october[0].MinutesSpent)
	assert.Equal(t, 30, october[1].MinutesSpent)

	_, err = svc.ListByGoal(ctx, testutil.TestUserID, other.ID, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.ListByGoal(ctx, testutil.TestUserID, mine.ID, "2024-13")
	assert.ErrorIs(t, err, analytics.ErrInvalidInput)

	byMonth, err := svc.ListByMonth(ctx, testutil.TestUserID, "2024-10")
	require.NoError(t, err)
	assert.Len(t, byMonth, 2, "other users' entries are excluded")

	_, err = svc.ListByMonth(ctx, testutil.TestUserID, "October")
	assert.ErrorIs(t, err, analytics.ErrInvalidInput)
}

func TestUpdateProgress_RecomputesTargetMet(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	svc := NewProgressService(progress, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Study", testutil.WithTarget(45))
	require.NoError(t, goals.Create(ctx, g))
	p := &domain.ProgressEntry{GoalID: g.ID, Date: testutil.Day(2024, time.April, 2), MinutesSpent: 15, Note: "warmup"}
	require.NoError(t, svc.Record(ctx, testutil.TestUserID, p))

	minutes := 50
	date := testutil.Day(2024, time.April, 3)
	updated, err := svc.Update(ctx, testutil.TestUserID, p.ID, app.ProgressPatch{MinutesSpent: &minutes, Date: &date})
	require.NoError(t, err)
	assert.True(t, updated.TargetMet)
	assert.Equal(t, "warmup", updated.Note)

	stored, err := svc.GetByID(ctx, testutil.TestUserID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.MinutesSpent)
	assert.Equal(t, date, stored.Date)
	assert.True(t, stored.TargetMet)

	_, err = svc.Update(ctx, testutil.TestUserID, p.ID, app.ProgressPatch{})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Update(ctx, "someone-else", p.ID, app.ProgressPatch{MinutesSpent: &minutes})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteProgress(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	svc := NewProgressService(progress, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Draw")
	require.NoError(t, goals.Create(ctx, g))
	p := testutil.NewTestProgress(g.ID, testutil.Day(2024, time.April, 2), 15)
	require.NoError(t, progress.Create(ctx, p))

	err := svc.Delete(ctx, "someone-else", p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, testutil.TestUserID, p.ID))
	_, err = svc.GetByID(ctx, testutil.TestUserID, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, testutil.TestUserID, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
