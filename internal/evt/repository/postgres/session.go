package postgres

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// Session wraps the database connection and remembers which named statements
// have been registered on it. It is not safe for concurrent use.
type Session struct {
	conn     Conn
	prepared map[string]bool
}

// NewSession creates a session over conn with no statements registered.
func NewSession(conn Conn) *Session {
	return &Session{conn: conn, prepared: make(map[string]bool)}
}

// Prepare registers the named statement unless it already is.
func (s *Session) Prepare(ctx context.Context, name string) error {
	if s.prepared[name] {
		return nil
	}
	sql, ok := render.Templates[name]
	if !ok {
		return fmt.Errorf("prepare %q: %w", name, ErrUnknownStatement)
	}
	if _, err := s.conn.Prepare(ctx, name, sql); err != nil {
		return fmt.Errorf("prepare %q: %w", name, err)
	}
	s.prepared[name] = true
	return nil
}

// PrepareAll registers every known statement.
func (s *Session) PrepareAll(ctx context.Context) error {
	names := make([]string, 0, len(render.Templates))
	for name := range render.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Prepare(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// IsPrepared reports whether the named statement has been registered.
func (s *Session) IsPrepared(name string) bool {
	return s.prepared[name]
}

// Exec runs an ad hoc statement.
func (s *Session) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := s.conn.Exec(ctx, sql, args...)
	return err
}

// QueryRow runs an ad hoc single-row query.
func (s *Session) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.conn.QueryRow(ctx, sql, args...)
}

// ExecStatement runs a named statement on the session.
func (s *Session) ExecStatement(ctx context.Context, st render.Statement) (pgconn.CommandTag, error) {
	if err := s.Prepare(ctx, st.Name); err != nil {
		return pgconn.CommandTag{}, err
	}
	return s.conn.Exec(ctx, st.Name, st.Args...)
}

// QueryStatement runs a named single-row statement on the session.
func (s *Session) QueryStatement(ctx context.Context, st render.Statement, dest ...any) error {
	if err := s.Prepare(ctx, st.Name); err != nil {
		return err
	}
	return s.conn.QueryRow(ctx, st.Name, st.Args...).Scan(dest...)
}

// Copy streams COPY text-format rows from r into table.
func (s *Session) Copy(ctx context.Context, table string, columns []string, r io.Reader) (int64, error) {
	tag, err := s.conn.CopyText(ctx, r, copySQL(table, columns))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Begin opens a transaction on the session.
func (s *Session) Begin(ctx context.Context) (Tx, error) {
	return s.conn.Begin(ctx)
}

// Close closes the connection.
func (s *Session) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

func copySQL(table string, columns []string) string {
	cols := make([]byte, 0, 16*len(columns))
	for i, c := range columns {
		if i > 0 {
			cols = append(cols, ", "...)
		}
		cols = append(cols, pgx.Identifier{c}.Sanitize()...)
	}
	return fmt.Sprintf("COPY %s (%s) FROM STDIN", pgx.Identifier{table}.Sanitize(), cols)
}
