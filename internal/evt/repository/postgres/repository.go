// Package postgres persists EVT chain data in PostgreSQL: it owns the database
// session, the schema, the sync checkpoint and the two per-block write buffers.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the single database session used by the repository.
	Conn interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error)
		Begin(ctx context.Context) (Tx, error)
		CopyText(ctx context.Context, r io.Reader, sql string) (pgconn.CommandTag, error)
		Close(ctx context.Context) error
	}

	// Tx is an open transaction on Conn.
	Tx interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	session *Session
	metrics Metrics
}

// NewRepository connects to PostgreSQL. The connection is never re-established;
// a lost session surfaces as errors from every later call.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	return &Repository{session: NewSession(pgxConn{Conn: conn}), metrics: metrics}, nil
}

// Close tears the session down.
func (r *Repository) Close(ctx context.Context) error {
	return r.session.Close(ctx)
}

type pgxConn struct {
	*pgx.Conn
}

func (c pgxConn) Begin(ctx context.Context) (Tx, error) {
	return c.Conn.Begin(ctx)
}

func (c pgxConn) CopyText(ctx context.Context, r io.Reader, sql string) (pgconn.CommandTag, error) {
	return c.Conn.PgConn().CopyFrom(ctx, r, sql)
}
