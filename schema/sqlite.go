package schema

import (
	"context"
	"log/slog"

	"github.com/zoobzio/sqlbuild"
	"github.com/zoobzio/sqlbuild/sqlite"
)

// SQLiteEditor composes and executes SQLite DDL.
type SQLiteEditor struct {
	db     SQLExecutor
	logger *slog.Logger
	ddl
}

// NewSQLiteEditor creates an editor bound to db.
func NewSQLiteEditor(db SQLExecutor, opts ...Option) *SQLiteEditor {
	o := newOptions(opts)
	return &SQLiteEditor{
		db:     db,
		logger: o.logger,
		ddl:    ddl{lex: sqlite.Dialect, dialect: sqlbuild.SQLite},
	}
}

// DatabaseType implements Editor.
func (e *SQLiteEditor) DatabaseType() DatabaseType { return SQLite }

// Execute implements Editor.
func (e *SQLiteEditor) Execute(ctx context.Context, sql string) error {
	return execute(ctx, e.logger, SQLite, sql, func(ctx context.Context, stmt string) error {
		_, err := e.db.ExecContext(ctx, stmt)
		return err
	})
}

// CreateIndexSQL composes CREATE INDEX.
func (e *SQLiteEditor) CreateIndexSQL(idx Index) string {
	return e.createIndex(idx, idx.IfNotExists)
}

// DropIndexSQL composes DROP INDEX IF EXISTS.
func (e *SQLiteEditor) DropIndexSQL(name string) string {
	return "DROP INDEX IF EXISTS " + e.quote(name)
}
