package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zoobzio/sqlbuild"
	"github.com/zoobzio/sqlbuild/postgres"
)

// PostgresEditor composes and executes PostgreSQL DDL.
type PostgresEditor struct {
	pool   PgxExecutor
	logger *slog.Logger
	ddl
}

// NewPostgresEditor creates an editor bound to pool, typically a
// *pgxpool.Pool.
func NewPostgresEditor(pool PgxExecutor, opts ...Option) *PostgresEditor {
	o := newOptions(opts)
	return &PostgresEditor{
		pool:   pool,
		logger: o.logger,
		ddl:    ddl{lex: postgres.Dialect, dialect: sqlbuild.Postgres},
	}
}

// DatabaseType implements Editor.
func (e *PostgresEditor) DatabaseType() DatabaseType { return Postgres }

// Execute implements Editor.
func (e *PostgresEditor) Execute(ctx context.Context, sql string) error {
	return execute(ctx, e.logger, Postgres, sql, func(ctx context.Context, stmt string) error {
		_, err := e.pool.Exec(ctx, stmt)
		return err
	})
}

// CreateIndexSQL composes CREATE INDEX.
func (e *PostgresEditor) CreateIndexSQL(idx Index) string {
	return e.createIndex(idx, idx.IfNotExists)
}

// DropIndexSQL composes DROP INDEX IF EXISTS.
func (e *PostgresEditor) DropIndexSQL(name string) string {
	return "DROP INDEX IF EXISTS " + e.quote(name)
}

// AlterColumnTypeSQL composes ALTER COLUMN ... TYPE.
func (e *PostgresEditor) AlterColumnTypeSQL(table, column, newType string) string {
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s", e.quote(table), e.quote(column), newType)
}

// SetNotNullSQL composes ALTER COLUMN ... SET NOT NULL.
func (e *PostgresEditor) SetNotNullSQL(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET NOT NULL", e.quote(table), e.quote(column))
}

// DropNotNullSQL composes ALTER COLUMN ... DROP NOT NULL.
func (e *PostgresEditor) DropNotNullSQL(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP NOT NULL", e.quote(table), e.quote(column))
}

// CreateSequenceSQL composes CREATE SEQUENCE IF NOT EXISTS.
func (e *PostgresEditor) CreateSequenceSQL(name string, start, increment int64) string {
	return fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s START WITH %d INCREMENT BY %d", e.quote(name), start, increment)
}

// DropSequenceSQL composes DROP SEQUENCE IF EXISTS.
func (e *PostgresEditor) DropSequenceSQL(name string) string {
	return "DROP SEQUENCE IF EXISTS " + e.quote(name)
}

// AlterSequenceSQL renders seq.
func (e *PostgresEditor) AlterSequenceSQL(seq *sqlbuild.AlterSequence) (string, error) {
	result, err := sqlbuild.Build(sqlbuild.Postgres, seq)
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}
