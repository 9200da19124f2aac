// Package schema composes and executes DDL.
//
// Every editor separates two concerns. Composition methods (CreateTableSQL,
// AddColumnSQL, ...) are pure and return SQL text without touching a
// connection. Execute sends one statement through the pool the editor was
// built with. Editors are immutable after construction and safe for
// concurrent use; pooling, retries and timeouts belong to the caller and the
// driver.
package schema

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoobzio/sqlbuild"
)

// DatabaseType identifies the database family an editor talks to.
type DatabaseType int

const (
	Postgres DatabaseType = iota
	MySQL
	SQLite
)

func (t DatabaseType) String() string {
	switch t {
	case Postgres:
		return "PostgreSQL"
	case MySQL:
		return "MySQL"
	case SQLite:
		return "SQLite"
	default:
		return "unknown"
	}
}

// Dialect returns the statement dialect used to render DDL for t.
func (t DatabaseType) Dialect() sqlbuild.Dialect {
	switch t {
	case MySQL:
		return sqlbuild.MySQL
	case SQLite:
		return sqlbuild.SQLite
	default:
		return sqlbuild.Postgres
	}
}

// Editor executes DDL against one database.
type Editor interface {
	// DatabaseType reports the database family, used for routing.
	DatabaseType() DatabaseType

	// Execute runs a single statement. Failures are *ExecError.
	Execute(ctx context.Context, sql string) error
}

// PgxExecutor is the part of a pgx pool, connection or transaction an
// editor needs.
type PgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// SQLExecutor is the part of *sql.DB, *sql.Conn or *sql.Tx an editor needs.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ PgxExecutor = (*pgxpool.Pool)(nil)
	_ SQLExecutor = (*sql.DB)(nil)

	_ Editor = (*PostgresEditor)(nil)
	_ Editor = (*MySQLEditor)(nil)
	_ Editor = (*SQLiteEditor)(nil)
	_ Editor = (*CockroachDBEditor)(nil)
)

// Column describes one column in table DDL. Type may carry inline
// constraints, e.g. "UUID PRIMARY KEY".
type Column = sqlbuild.ColumnDef

// Index describes a CREATE INDEX statement.
type Index struct {
	Name        string
	Table       string
	Columns     []string
	Unique      bool
	IfNotExists bool
}

// Option configures an editor.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by Execute. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// execute runs stmt through exec, logging it and classifying failures.
func execute(ctx context.Context, log *slog.Logger, db DatabaseType, stmt string,
	exec func(context.Context, string) error) error {
	if stmt == "" {
		return &ExecError{Database: db, Kind: KindSyntax, Err: ErrEmptyStatement}
	}

	log.DebugContext(ctx, "executing schema statement", "database", db.String(), "sql", stmt)
	if err := exec(ctx, stmt); err != nil {
		xerr := newExecError(db, stmt, err)
		log.ErrorContext(ctx, "schema statement failed",
			"database", db.String(),
			"kind", xerr.Kind.String(),
			"error", err,
		)
		return xerr
	}
	return nil
}
