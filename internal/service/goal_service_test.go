package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/alexanderramin/goaltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalCreate_AssignsIDAndNormalizes(t *testing.T) {
	goals, _, uow := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewGoalService(goals, uow, obs)
	ctx := context.Background()

	g := &domain.Goal{
		UserID:              testutil.TestUserID,
		Title:               "Read",
		TargetMinutesPerDay: 20,
		StartDate:           time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC),
		Tags:                []string{" Books ", "books", "Focus"},
	}
	require.NoError(t, svc.Create(ctx, g))

	assert.NotEmpty(t, g.ID)
	assert.False(t, g.CreatedAt.IsZero())

	stored, err := svc.GetByID(ctx, testutil.TestUserID, g.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Day(2024, time.March, 5), stored.StartDate)
	assert.Equal(t, []string{"books", "focus"}, stored.Tags)

	ev := obs.last()
	assert.Equal(t, "goal.create", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, g.ID, ev.Fields["goal_id"])
}

func TestGoalCreate_RejectsInvalid(t *testing.T) {
	goals, _, uow := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewGoalService(goals, uow, obs)
	ctx := context.Background()

	g := testutil.NewTestGoal("", testutil.WithTarget(0))
	err := svc.Create(ctx, g)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Problems, "title is required")
	assert.Contains(t, ve.Problems, "target minutes must be positive")
	assert.False(t, obs.last().Success)

	list, err := svc.List(ctx, testutil.TestUserID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGoalGetByID_OtherUserIsNotFound(t *testing.T) {
	goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Private", testutil.WithUser("someone-else"))
	require.NoError(t, goals.Create(ctx, g))

	_, err := svc.GetByID(ctx, testutil.TestUserID, g.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGoalUpdate_TargetChangeRefreshesEntries(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewGoalService(goals, uow, obs)
	ctx := context.Background()

	g := testutil.NewTestGoal("Practice", testutil.WithTarget(30))
	require.NoError(t, goals.Create(ctx, g))
	short := testutil.NewTestProgress(g.ID, testutil.Day(2024, time.May, 1), 20)
	long := testutil.NewTestProgress(g.ID, testutil.Day(2024, time.May, 2), 40, testutil.WithTargetMet(true))
	require.NoError(t, progress.Create(ctx, short))
	require.NoError(t, progress.Create(ctx, long))

	target := 15
	updated, err := svc.Update(ctx, testutil.TestUserID, g.ID, app.GoalPatch{TargetMinutesPerDay: &target})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.TargetMinutesPerDay)

	entries, err := progress.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].TargetMet, "20 minutes now meets a 15 minute target")
	assert.True(t, entries[1].TargetMet)
	assert.Equal(t, 1, obs.last().Fields["entries_refreshed"])
}

func TestGoalUpdate_PartialPatch(t *testing.T) {
	goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Run", testutil.WithEndDate(testutil.Day(2024, time.December, 31)), testutil.WithTags("health"))
	require.NoError(t, goals.Create(ctx, g))

	title := "Run 5k"
	updated, err := svc.Update(ctx, testutil.TestUserID, g.ID, app.GoalPatch{Title: &title, ClearEndDate: true})
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", updated.Title)
	assert.Nil(t, updated.EndDate)
	assert.Equal(t, []string{"health"}, updated.Tags)
	assert.Equal(t, 30, updated.TargetMinutesPerDay)

	stored, err := goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", stored.Title)
	assert.Nil(t, stored.EndDate)
}

func TestGoalUpdate_RejectsEmptyAndInvalidPatches(t *testing.T) {
	goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Write")
	require.NoError(t, goals.Create(ctx, g))

	var ve *domain.ValidationError
	_, err := svc.Update(ctx, testutil.TestUserID, g.ID, app.GoalPatch{})
	require.ErrorAs(t, err, &ve)

	end := testutil.Day(2023, time.June, 1)
	_, err = svc.Update(ctx, testutil.TestUserID, g.ID, app.GoalPatch{EndDate: &end})
	require.ErrorAs(t, err, &ve)

	stored, err := goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.EndDate, "rejected patch must not be persisted")
}

func TestGoalDelete_RemovesEntries(t *testing.T) {
	goals, progress, uow := setupRepos(t)
	svc := NewGoalService(goals, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Meditate")
	require.NoError(t, goals.Create(ctx, g))
	require.NoError(t, progress.Create(ctx, testutil.NewTestProgress(g.ID, testutil.Day(2024, time.May, 1), 10)))

	require.NoError(t, svc.Delete(ctx, testutil.TestUserID, g.ID))

	_, err := goals.GetByID(ctx, g.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	entries, err := progress.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGoalDelete_OtherUserIsNotFound(t *testing.T) {
	goals, _, uow := setupRepos(t)
	svc := NewGoalService(goals, uow)
	ctx := context.Background()

	g := testutil.NewTestGoal("Theirs", testutil.WithUser("someone-else"))
	require.NoError(t, goals.Create(ctx, g))

	err := svc.Delete(ctx, testutil.TestUserID, g.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = goals.GetByID(ctx, g.ID)
	assert.NoError(t, err)
}
