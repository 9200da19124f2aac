package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/zoobzio/sqlbuild/internal/render"
	"github.com/zoobzio/sqlbuild/internal/types"
	"github.com/zoobzio/sqlbuild/mysql"
	"github.com/zoobzio/sqlbuild/postgres"
	"github.com/zoobzio/sqlbuild/sqlite"
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// UnsupportedFeatureError indicates a statement uses a feature the
// target dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// InvalidStatementError indicates a statement failed validation before
// rendering, e.g. a missing target table.
type InvalidStatementError = render.InvalidStatementError

// Renderer turns statement ASTs into dialect-specific SQL.
type Renderer interface {
	types.StatementBuilder

	// QuoteIdent quotes a single identifier for the dialect.
	QuoteIdent(name string) string

	// Capabilities reports the dialect's feature set.
	Capabilities() Capabilities
}

// Dialect is the closed set of supported SQL dialects.
type Dialect uint8

const (
	Postgres Dialect = iota
	MySQL
	SQLite
)

var (
	_ Renderer = (*postgres.Renderer)(nil)
	_ Renderer = (*mysql.Renderer)(nil)
	_ Renderer = (*sqlite.Renderer)(nil)
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	default:
		return fmt.Sprintf("dialect(%d)", uint8(d))
	}
}

// ParseDialect maps a configuration name onto a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q", name)
	}
}

// Renderer returns the renderer for d. A value outside the declared
// constants is a programming error and panics.
func (d Dialect) Renderer() Renderer {
	switch d {
	case Postgres:
		return postgres.New()
	case MySQL:
		return mysql.New()
	case SQLite:
		return sqlite.New()
	default:
		panic(fmt.Sprintf("sqlbuild: unsupported dialect %d: only Postgres, MySQL and SQLite exist", uint8(d)))
	}
}

// QuoteIdent quotes name using d's rules.
func (d Dialect) QuoteIdent(name string) string {
	return d.Renderer().QuoteIdent(name)
}

// Build renders stmt for dialect d.
func Build(d Dialect, stmt Statement) (*QueryResult, error) {
	if stmt == nil {
		return nil, fmt.Errorf("sqlbuild: nil statement")
	}
	return stmt.Accept(d.Renderer())
}

// MustBuild is like Build but panics on error.
func MustBuild(d Dialect, stmt Statement) *QueryResult {
	result, err := Build(d, stmt)
	if err != nil {
		panic(err)
	}
	return result
}
