// Package sqlite provides the SQLite dialect renderer for sqlbuild.
package sqlite

import (
	"github.com/zoobzio/sqlbuild/internal/render"
	"github.com/zoobzio/sqlbuild/internal/types"
)

// Dialect holds the SQLite lexical rules. SQLite needs a LIMIT before
// OFFSET; -1 means unbounded.
var Dialect = render.Dialect{
	Name:        "sqlite",
	Quote:       '"',
	Placeholder: render.PlaceholderQuestion,
	NoLimit:     "-1",
}

// QuoteIdent quotes a SQLite identifier with double quotes.
func QuoteIdent(name string) string {
	return Dialect.QuoteIdent(name)
}

// Renderer implements the SQLite dialect renderer.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// QuoteIdent quotes name for SQLite.
func (r *Renderer) QuoteIdent(name string) string {
	return QuoteIdent(name)
}

// BuildInsert renders an INSERT statement. ON CONFLICT and RETURNING
// require SQLite 3.24 and 3.35 respectively.
func (r *Renderer) BuildInsert(ins *types.Insert) (*types.QueryResult, error) {
	if err := ins.Validate(); err != nil {
		return nil, render.Invalid("INSERT", err)
	}
	w := render.NewWriter(Dialect)
	if err := w.Insert(ins, render.OnConflict); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// BuildSelect renders a SELECT statement.
func (r *Renderer) BuildSelect(sel *types.Select) (*types.QueryResult, error) {
	w := render.NewWriter(Dialect)
	if err := w.Select(sel); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// BuildUpdate renders an UPDATE statement.
func (r *Renderer) BuildUpdate(upd *types.Update) (*types.QueryResult, error) {
	if err := upd.Validate(); err != nil {
		return nil, render.Invalid("UPDATE", err)
	}
	w := render.NewWriter(Dialect)
	w.WriteString("UPDATE ")
	w.Table(upd.Target())
	w.WriteString(" SET ")
	w.Assignments(upd.Assignments())
	w.Where(upd.Conditions())
	w.Returning(upd.ReturningClause())
	return w.Result(), nil
}

// BuildDelete renders a DELETE statement.
func (r *Renderer) BuildDelete(del *types.Delete) (*types.QueryResult, error) {
	if err := del.Validate(); err != nil {
		return nil, render.Invalid("DELETE", err)
	}
	w := render.NewWriter(Dialect)
	w.WriteString("DELETE FROM ")
	w.Table(del.Target())
	w.Where(del.Conditions())
	w.Returning(del.ReturningClause())
	return w.Result(), nil
}

// BuildAlterSequence always fails: SQLite has no sequence objects.
func (r *Renderer) BuildAlterSequence(_ *types.AlterSequence) (*types.QueryResult, error) {
	return nil, render.NewUnsupportedFeatureError(Dialect.Name, "ALTER SEQUENCE",
		"use INTEGER PRIMARY KEY AUTOINCREMENT and the sqlite_sequence table")
}

// BuildCreateTable renders a CREATE TABLE statement.
func (r *Renderer) BuildCreateTable(ct *types.CreateTable) (*types.QueryResult, error) {
	w := render.NewWriter(Dialect)
	if err := w.CreateTable(ct); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// Capabilities returns the SQL features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder: render.PlaceholderQuestion,
		Upsert:      render.UpsertOnConflict,
		Returning:   true,
		Sequences:   false,
		QuoteChar:   Dialect.Quote,
	}
}
