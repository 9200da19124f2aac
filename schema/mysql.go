package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zoobzio/sqlbuild"
	"github.com/zoobzio/sqlbuild/mysql"
)

// MySQLEditor composes and executes MySQL DDL.
type MySQLEditor struct {
	db     SQLExecutor
	logger *slog.Logger
	ddl
}

// NewMySQLEditor creates an editor bound to db.
func NewMySQLEditor(db SQLExecutor, opts ...Option) *MySQLEditor {
	o := newOptions(opts)
	return &MySQLEditor{
		db:     db,
		logger: o.logger,
		ddl:    ddl{lex: mysql.Dialect, dialect: sqlbuild.MySQL},
	}
}

// DatabaseType implements Editor.
func (e *MySQLEditor) DatabaseType() DatabaseType { return MySQL }

// Execute implements Editor.
func (e *MySQLEditor) Execute(ctx context.Context, sql string) error {
	return execute(ctx, e.logger, MySQL, sql, func(ctx context.Context, stmt string) error {
		_, err := e.db.ExecContext(ctx, stmt)
		return err
	})
}

// CreateIndexSQL composes CREATE INDEX. MySQL has no IF NOT EXISTS for
// indexes, so the flag is ignored.
func (e *MySQLEditor) CreateIndexSQL(idx Index) string {
	return e.createIndex(idx, false)
}

// DropIndexSQL composes DROP INDEX ... ON table.
func (e *MySQLEditor) DropIndexSQL(table, name string) string {
	return fmt.Sprintf("DROP INDEX %s ON %s", e.quote(name), e.quote(table))
}

// AlterColumnTypeSQL composes MODIFY COLUMN. The new type must repeat any
// constraints the column keeps.
func (e *MySQLEditor) AlterColumnTypeSQL(table, column, newType string) string {
	return fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s %s", e.quote(table), e.quote(column), newType)
}
