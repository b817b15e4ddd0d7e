package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/goaltrack/internal/db"
)

// FailOnNthExecUoW injects err on the n-th write (counted from 1) inside
// WithinTx, so tests can check that an import rolls back as a whole.
// Reads and WithinReadTx pass straight through.
type FailOnNthExecUoW struct {
	*db.SQLiteUnitOfWork
	failOn int32
	err    error
}

func NewFailOnNthExecUoW(database *sql.DB, n int32, err error) *FailOnNthExecUoW {
	return &FailOnNthExecUoW{SQLiteUnitOfWork: db.NewSQLiteUnitOfWork(database), failOn: n, err: err}
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.SQLiteUnitOfWork.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, failOn: u.failOn, err: u.err})
	})
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
