package schema

import (
	"context"
	"fmt"
)

// CockroachDBEditor adds CockroachDB's multi-region, partitioning and
// historical-read syntax on top of a PostgreSQL editor it owns.
// Baseline DDL is composed through Base().
type CockroachDBEditor struct {
	pg *PostgresEditor
}

// NewCockroachDBEditor creates an editor bound to pool.
func NewCockroachDBEditor(pool PgxExecutor, opts ...Option) *CockroachDBEditor {
	return &CockroachDBEditor{pg: NewPostgresEditor(pool, opts...)}
}

// WrapPostgres extends an existing PostgreSQL editor.
func WrapPostgres(pg *PostgresEditor) *CockroachDBEditor {
	return &CockroachDBEditor{pg: pg}
}

// Base returns the wrapped PostgreSQL editor.
func (e *CockroachDBEditor) Base() *PostgresEditor { return e.pg }

// DatabaseType reports Postgres: CockroachDB speaks its wire protocol.
func (e *CockroachDBEditor) DatabaseType() DatabaseType { return Postgres }

// Execute runs sql through the wrapped editor.
func (e *CockroachDBEditor) Execute(ctx context.Context, sql string) error {
	return e.pg.Execute(ctx, sql)
}

// CreateTableWithLocalitySQL composes CREATE TABLE ... LOCALITY, e.g. with
// locality "REGIONAL BY ROW" or "GLOBAL".
func (e *CockroachDBEditor) CreateTableWithLocalitySQL(table string, cols []Column, locality string) (string, error) {
	return e.pg.createTable(table, cols, false, "LOCALITY "+locality)
}

// AlterTableLocalitySQL composes ALTER TABLE ... SET LOCALITY.
func (e *CockroachDBEditor) AlterTableLocalitySQL(table, locality string) string {
	return fmt.Sprintf("ALTER TABLE %s SET LOCALITY %s", e.pg.quote(table), locality)
}

// CreatePartitionedTableSQL composes CREATE TABLE ... PARTITION BY, where
// partitionBy is the clause body, e.g. "LIST (region) (PARTITION us VALUES IN ('us'))".
func (e *CockroachDBEditor) CreatePartitionedTableSQL(table string, cols []Column, partitionBy string) (string, error) {
	return e.pg.createTable(table, cols, false, "PARTITION BY "+partitionBy)
}

// CreateIndexWithStoringSQL composes a covering index.
func (e *CockroachDBEditor) CreateIndexWithStoringSQL(idx Index, storing []string) string {
	stmt := e.pg.CreateIndexSQL(idx)
	if len(storing) == 0 {
		return stmt
	}
	return stmt + " STORING (" + e.pg.quoteList(storing) + ")"
}

// AsOfSystemTimeSQL appends AS OF SYSTEM TIME to query. ts is an
// expression, e.g. "'-10s'" or "follower_read_timestamp()".
func (e *CockroachDBEditor) AsOfSystemTimeSQL(query, ts string) string {
	return query + " AS OF SYSTEM TIME " + ts
}

// ShowRegionsSQL lists the cluster regions.
func (e *CockroachDBEditor) ShowRegionsSQL() string {
	return "SHOW REGIONS"
}

// ShowSurvivalGoalSQL shows the survival goal of database db.
func (e *CockroachDBEditor) ShowSurvivalGoalSQL(db string) string {
	return "SHOW SURVIVAL GOAL FROM DATABASE " + e.pg.quote(db)
}

// SetPrimaryRegionSQL sets the primary region of database db.
func (e *CockroachDBEditor) SetPrimaryRegionSQL(db, region string) string {
	return fmt.Sprintf("ALTER DATABASE %s SET PRIMARY REGION %s", e.pg.quote(db), e.pg.quote(region))
}
