package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertGoal(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO goals (id, user_id, title, target_minutes_per_day, start_date, created_at, updated_at)
		VALUES (?, 'u1', 'Goal', 30, '2024-01-01', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`, id)
	return err
}

func goalExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var count int
	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals WHERE id = ?`, id).Scan(&count)
	})
	require.NoError(t, err)
	return count > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertGoal(ctx, tx, "g1")
	})
	require.NoError(t, err)
	assert.True(t, goalExists(t, uow, "g1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	sentinel := errors.New("import aborted")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertGoal(ctx, tx, "g2"); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, goalExists(t, uow, "g2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertGoal(ctx, tx, "g3")
			panic("boom")
		})
	})
	assert.False(t, goalExists(t, uow, "g3"), "row should not exist after panic rollback")
}

func TestWithinTx_CancelledContext(t *testing.T) {
	uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return insertGoal(ctx, tx, "g4")
	})
	assert.Error(t, err)
}

func TestWithinReadTx_RejectsWrites(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertGoal(ctx, tx, "g5")
	})
	assert.ErrorIs(t, err, db.ErrReadOnly)
	assert.False(t, goalExists(t, uow, "g5"))
}

func TestWithinReadTx_SeesCommittedRows(t *testing.T) {
	uow := newUoW(t)
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertGoal(ctx, tx, "g6")
	}))

	var title string
	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT title FROM goals WHERE id = ?`, "g6").Scan(&title)
	})
	require.NoError(t, err)
	assert.Equal(t, "Goal", title)

	// the connection is writable again afterwards
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertGoal(ctx, tx, "g7")
	}))
	assert.True(t, goalExists(t, uow, "g7"))
}

func TestWithinReadTx_PassesThroughErrors(t *testing.T) {
	uow := newUoW(t)
	sentinel := errors.New("bad filter")

	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
