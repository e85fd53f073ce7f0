// Package repo contains all database access logic for the Tutor Catalog API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here: only SQL, soft-delete predicates and type mapping.
package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// now returns the timestamp stamped on created/updated/deleted columns.
// Timestamps are taken in Go rather than with SQL now(): inside a test
// transaction now() is frozen, so updated_at would never advance.
// Postgres stores microseconds, so the value is truncated to match what a
// later SELECT returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
