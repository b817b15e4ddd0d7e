package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// progressTestSetup creates a goal for the progress tests to log against.
func progressTestSetup(t *testing.T) (*SQLiteProgressRepo, *SQLiteGoalRepo, *domain.Goal) {
	t.Helper()
	database := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(database)

	goal := testutil.NewTestGoal("Reading")
	require.NoError(t, goals.Create(context.Background(), goal))
	return NewSQLiteProgressRepo(database), goals, goal
}

func TestProgressRepo_CreateAndGetByID(t *testing.T) {
	repo, _, goal := progressTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestProgress(goal.ID, time.Date(2024, 10, 1, 18, 30, 0, 0, time.UTC), 45,
		testutil.WithNote("two chapters"), testutil.WithTargetMet(true))
	require.NoError(t, repo.Create(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, fetched.GoalID)
	assert.Equal(t, testutil.Day(2024, time.October, 1), fetched.Date)
	assert.Equal(t, 45, fetched.MinutesSpent)
	assert.Equal(t, "two chapters", fetched.Note)
	assert.True(t, fetched.TargetMet)
}

func TestProgressRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := progressTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressRepo_CreateRejectsUnknownGoal(t *testing.T) {
	repo, _, _ := progressTestSetup(t)

	err := repo.Create(context.Background(), testutil.NewTestProgress("missing-goal", testutil.Day(2024, time.October, 1), 10))
	assert.Error(t, err, "foreign key should reject progress for an unknown goal")
}

func TestProgressRepo_ListByGoal_OrderedByDate(t *testing.T) {
	repo, _, goal := progressTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(goal.ID, testutil.Day(2024, time.October, 3), 25)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(goal.ID, testutil.Day(2024, time.October, 1), 30)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(goal.ID, testutil.Day(2024, time.October, 2), 45)))

	entries, err := repo.ListByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{30, 45, 25}, []int{entries[0].MinutesSpent, entries[1].MinutesSpent, entries[2].MinutesSpent})
}

func TestProgressRepo_ListByGoalBetween_HalfOpen(t *testing.T) {
	repo, _, goal := progressTestSetup(t)
	ctx := context.Background()

	for _, d := range []time.Time{
		testutil.Day(2024, time.September, 30),
		testutil.Day(2024, time.October, 1),
		testutil.Day(2024, time.October, 31),
		testutil.Day(2024, time.November, 1),
	} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(goal.ID, d, 10)))
	}

	entries, err := repo.ListByGoalBetween(ctx, goal.ID, testutil.Day(2024, time.October, 1), testutil.Day(2024, time.November, 1))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, testutil.Day(2024, time.October, 1), entries[0].Date)
	assert.Equal(t, testutil.Day(2024, time.October, 31), entries[1].Date)
}

func TestProgressRepo_ListByUserBetween_ScopedToOwner(t *testing.T) {
	repo, goals, mine := progressTestSetup(t)
	ctx := context.Background()

	theirs := testutil.NewTestGoal("Not mine", testutil.WithUser("user-2"))
	require.NoError(t, goals.Create(ctx, theirs))

	require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(mine.ID, testutil.Day(2024, time.February, 10), 30)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(theirs.ID, testutil.Day(2024, time.February, 10), 30)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProgress(mine.ID, testutil.Day(2025, time.January, 1), 30)))

	entries, err := repo.ListByUserBetween(ctx, testutil.TestUserID, testutil.Day(2024, time.January, 1), testutil.Day(2025, time.January, 1))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, mine.ID, entries[0].GoalID)
}

func TestProgressRepo_UpdateAndDelete(t *testing.T) {
	repo, _, goal := progressTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestProgress(goal.ID, testutil.Day(2024, time.October, 1), 10)
	require.NoError(t, repo.Create(ctx, entry))

	entry.MinutesSpent = 40
	entry.TargetMet = true
	entry.Note = "caught up"
	entry.Date = testutil.Day(2024, time.October, 2)
	require.NoError(t, repo.Update(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, fetched.MinutesSpent)
	assert.True(t, fetched.TargetMet)
	assert.Equal(t, "caught up", fetched.Note)
	assert.Equal(t, testutil.Day(2024, time.October, 2), fetched.Date)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	_, err = repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, entry.ID), ErrNotFound)
}

func TestProgressRepo_NegativeMinutesRejected(t *testing.T) {
	repo, _, goal := progressTestSetup(t)

	err := repo.Create(context.Background(), testutil.NewTestProgress(goal.ID, testutil.Day(2024, time.October, 1), -5))
	assert.Error(t, err, "CHECK constraint should reject negative minutes")
}
