package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/repository"
	"github.com/alexanderramin/goaltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenGoalRepo fails every lookup with err.
type brokenGoalRepo struct {
	repository.GoalRepo
	err error
}

func (r brokenGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return nil, r.err
}

func TestOwnedProgress_PassesThroughStoreErrors(t *testing.T) {
	goals, progress, _ := setupRepos(t)
	ctx := context.Background()

	g := testutil.NewTestGoal("Spanish")
	require.NoError(t, goals.Create(ctx, g))
	p := testutil.NewTestProgress(g.ID, testutil.Day(2024, time.October, 1), 30)
	require.NoError(t, progress.Create(ctx, p))

	diskErr := errors.New("disk I/O error")
	_, _, err := ownedProgress(ctx, brokenGoalRepo{err: diskErr}, progress, testutil.TestUserID, p.ID)
	require.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, repository.ErrNotFound)

	_, _, err = ownedProgress(ctx, goals, progress, "someone-else", p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	found, owner, err := ownedProgress(ctx, goals, progress, testutil.TestUserID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, g.ID, owner.ID)
}
