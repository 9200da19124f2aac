// Package mysql provides the MySQL dialect renderer for sqlbuild.
package mysql

import (
	"github.com/zoobzio/sqlbuild/internal/render"
	"github.com/zoobzio/sqlbuild/internal/types"
)

// Dialect holds the MySQL lexical rules. MySQL needs a LIMIT before
// OFFSET; the largest BIGINT UNSIGNED means unbounded.
var Dialect = render.Dialect{
	Name:        "mysql",
	Quote:       '`',
	Placeholder: render.PlaceholderQuestion,
	NoLimit:     "18446744073709551615",
}

// QuoteIdent quotes a MySQL identifier with back-ticks.
func QuoteIdent(name string) string {
	return Dialect.QuoteIdent(name)
}

// Renderer implements the MySQL dialect renderer.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// QuoteIdent quotes name for MySQL.
func (r *Renderer) QuoteIdent(name string) string {
	return QuoteIdent(name)
}

func unsupportedReturning() error {
	return render.NewUnsupportedFeatureError(Dialect.Name, "RETURNING",
		"use LAST_INSERT_ID() or a follow-up SELECT")
}

// BuildInsert renders an INSERT statement with ON DUPLICATE KEY UPDATE
// standing in for ON CONFLICT.
func (r *Renderer) BuildInsert(ins *types.Insert) (*types.QueryResult, error) {
	if err := ins.Validate(); err != nil {
		return nil, render.Invalid("INSERT", err)
	}
	if ins.ReturningClause().Kind != types.ReturningNone {
		return nil, unsupportedReturning()
	}
	if ins.Table().Alias != "" {
		return nil, render.NewUnsupportedFeatureError(Dialect.Name, "INSERT target alias",
			"MySQL does not accept INSERT INTO t AS alias")
	}
	w := render.NewWriter(Dialect)
	if err := w.Insert(ins, onDuplicateKey); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// onDuplicateKey writes ON DUPLICATE KEY UPDATE. MySQL picks the
// conflicting key itself, so conflict target columns only serve as the
// no-op assignment for DO NOTHING.
func onDuplicateKey(w *render.Writer, ins *types.Insert, c *types.OnConflict) error {
	w.WriteString(" ON DUPLICATE KEY UPDATE ")
	if c.Action != types.DoUpdate {
		var col types.Identifier
		switch {
		case len(c.Columns) > 0:
			col = c.Columns[0]
		case len(ins.ColumnList()) > 0:
			col = ins.ColumnList()[0]
		default:
			return w.Unsupported("ON CONFLICT DO NOTHING without any column",
				"declare insert columns or a conflict target")
		}
		w.Column(col)
		w.WriteString(" = ")
		w.Column(col)
		return nil
	}
	w.Assignments(c.Updates)
	for i, col := range c.Excluded {
		if i > 0 || len(c.Updates) > 0 {
			w.WriteString(", ")
		}
		w.Column(col)
		w.WriteString(" = VALUES(")
		w.Column(col)
		w.WriteString(")")
	}
	return nil
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
	if upd.ReturningClause().Kind != types.ReturningNone {
		return nil, unsupportedReturning()
	}
	w := render.NewWriter(Dialect)
	w.WriteString("UPDATE ")
	w.Table(upd.Target())
	w.WriteString(" SET ")
	w.Assignments(upd.Assignments())
	w.Where(upd.Conditions())
	return w.Result(), nil
}

// BuildDelete renders a DELETE statement.
func (r *Renderer) BuildDelete(del *types.Delete) (*types.QueryResult, error) {
	if err := del.Validate(); err != nil {
		return nil, render.Invalid("DELETE", err)
	}
	if del.ReturningClause().Kind != types.ReturningNone {
		return nil, unsupportedReturning()
	}
	w := render.NewWriter(Dialect)
	w.WriteString("DELETE FROM ")
	w.Table(del.Target())
	w.Where(del.Conditions())
	return w.Result(), nil
}

// BuildAlterSequence always fails: MySQL has no sequence objects.
func (r *Renderer) BuildAlterSequence(_ *types.AlterSequence) (*types.QueryResult, error) {
	return nil, render.NewUnsupportedFeatureError(Dialect.Name, "ALTER SEQUENCE",
		"use AUTO_INCREMENT columns and ALTER TABLE ... AUTO_INCREMENT = n")
}

// BuildCreateTable renders a CREATE TABLE statement.
func (r *Renderer) BuildCreateTable(ct *types.CreateTable) (*types.QueryResult, error) {
	w := render.NewWriter(Dialect)
	if err := w.CreateTable(ct); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// Capabilities returns the SQL features supported by MySQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder: render.PlaceholderQuestion,
		Upsert:      render.UpsertOnDuplicateKey,
		Returning:   false,
		Sequences:   false,
		QuoteChar:   Dialect.Quote,
	}
}
