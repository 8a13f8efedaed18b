// Package database defines the narrow SQL surface the repositories
// depend on, so they never import a driver directly.
package database

import (
	"context"
	"database/sql"
)

// DB is the connection handle handed to repositories. The pgx pool
// implements it; tests substitute their own.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	// SQLDB exposes the stdlib bridge for callers that need *sql.DB,
	// such as the migration runner.
	SQLDB() *sql.DB
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// Row mirrors pgx.Row: Scan surfaces the query error, including
// pgx.ErrNoRows for an empty result.
type Row interface {
	Scan(dest ...any) error
}
