package schema

import "fmt"

// Factory hands out editors bound to the pools it was given. Pools are
// registered at startup through the constructors and With* methods; after
// that the factory is read-only and safe for concurrent use.
//
// Asking for an editor whose pool was never registered is a deployment
// bug and panics.
type Factory struct {
	pg     PgxExecutor
	mysql  SQLExecutor
	sqlite SQLExecutor

	pgEditor     *PostgresEditor
	mysqlEditor  *MySQLEditor
	sqliteEditor *SQLiteEditor

	opts []Option
}

// NewFactory creates a factory with no pools. Register them with the
// With* methods.
func NewFactory(opts ...Option) *Factory {
	return &Factory{opts: opts}
}

// NewPostgresFactory creates a factory holding a PostgreSQL pool,
// typically a *pgxpool.Pool.
func NewPostgresFactory(pool PgxExecutor, opts ...Option) *Factory {
	return (&Factory{opts: opts}).WithPostgres(pool)
}

// NewMySQLFactory creates a factory holding a MySQL pool.
func NewMySQLFactory(db SQLExecutor, opts ...Option) *Factory {
	return (&Factory{opts: opts}).WithMySQL(db)
}

// NewSQLiteFactory creates a factory holding a SQLite pool.
func NewSQLiteFactory(db SQLExecutor, opts ...Option) *Factory {
	return (&Factory{opts: opts}).WithSQLite(db)
}

// WithPostgres registers a PostgreSQL pool. Not safe to call once the
// factory is shared.
func (f *Factory) WithPostgres(pool PgxExecutor) *Factory {
	f.pg = pool
	f.pgEditor = nil
	if pool != nil {
		f.pgEditor = NewPostgresEditor(pool, f.opts...)
	}
	return f
}

// WithMySQL registers a MySQL pool. Not safe to call once the factory is
// shared.
func (f *Factory) WithMySQL(db SQLExecutor) *Factory {
	f.mysql = db
	f.mysqlEditor = nil
	if db != nil {
		f.mysqlEditor = NewMySQLEditor(db, f.opts...)
	}
	return f
}

// WithSQLite registers a SQLite pool. Not safe to call once the factory
// is shared.
func (f *Factory) WithSQLite(db SQLExecutor) *Factory {
	f.sqlite = db
	f.sqliteEditor = nil
	if db != nil {
		f.sqliteEditor = NewSQLiteEditor(db, f.opts...)
	}
	return f
}

// Has reports whether a pool for t was registered.
func (f *Factory) Has(t DatabaseType) bool {
	switch t {
	case Postgres:
		return f.pg != nil
	case MySQL:
		return f.mysql != nil
	case SQLite:
		return f.sqlite != nil
	}
	return false
}

// CreateForDatabase returns a new editor bound to the pool for t.
func (f *Factory) CreateForDatabase(t DatabaseType) Editor {
	switch t {
	case Postgres:
		return NewPostgresEditor(f.mustPostgres(), f.opts...)
	case MySQL:
		return NewMySQLEditor(f.mustMySQL(), f.opts...)
	case SQLite:
		return NewSQLiteEditor(f.mustSQLite(), f.opts...)
	}
	panic(fmt.Sprintf("schema: unknown database type %d", int(t)))
}

// CreateShared returns the single editor instance for t. The same value is
// returned on every call and may be used from many goroutines.
func (f *Factory) CreateShared(t DatabaseType) Editor {
	switch t {
	case Postgres:
		return f.Postgres()
	case MySQL:
		return f.MySQL()
	case SQLite:
		return f.SQLite()
	}
	panic(fmt.Sprintf("schema: unknown database type %d", int(t)))
}

// Postgres returns the shared PostgreSQL editor.
func (f *Factory) Postgres() *PostgresEditor {
	f.mustPostgres()
	return f.pgEditor
}

// MySQL returns the shared MySQL editor.
func (f *Factory) MySQL() *MySQLEditor {
	f.mustMySQL()
	return f.mysqlEditor
}

// SQLite returns the shared SQLite editor.
func (f *Factory) SQLite() *SQLiteEditor {
	f.mustSQLite()
	return f.sqliteEditor
}

// CockroachDB returns a CockroachDB editor over the PostgreSQL pool.
func (f *Factory) CockroachDB() *CockroachDBEditor {
	f.mustPostgres()
	return WrapPostgres(f.pgEditor)
}

func (f *Factory) mustPostgres() PgxExecutor {
	if f.pg == nil {
		panic("schema: no PostgreSQL pool registered; build the factory with NewPostgresFactory or call WithPostgres")
	}
	return f.pg
}

func (f *Factory) mustMySQL() SQLExecutor {
	if f.mysql == nil {
		panic("schema: no MySQL pool registered; build the factory with NewMySQLFactory or call WithMySQL")
	}
	return f.mysql
}

func (f *Factory) mustSQLite() SQLExecutor {
	if f.sqlite == nil {
		panic("schema: no SQLite pool registered; build the factory with NewSQLiteFactory or call WithSQLite")
	}
	return f.sqlite
}
