package db

import (
	"context"
	"database/sql"
	"errors"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so repositories can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
	_ DBTX = readOnlyTx{}
)

// ErrReadOnly is returned for writes attempted inside WithinReadTx.
var ErrReadOnly = errors.New("write in read-only transaction")

// errSnapshotDone ends a read transaction with a rollback instead of a commit.
var errSnapshotDone = errors.New("snapshot done")

// readOnlyTx rejects writes before they reach SQLite.
type readOnlyTx struct {
	DBTX
}

func (readOnlyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, ErrReadOnly
}
