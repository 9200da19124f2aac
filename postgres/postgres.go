// Package postgres provides the PostgreSQL dialect renderer for sqlbuild.
//
// Identifiers are quoted with double quotes and parameters use ordinal
// placeholders ($1, $2, ...), numbered left to right across subqueries.
package postgres

import (
	"strconv"

	"github.com/zoobzio/sqlbuild/internal/render"
	"github.com/zoobzio/sqlbuild/internal/types"
)

// Dialect holds the PostgreSQL lexical rules.
var Dialect = render.Dialect{
	Name:        "postgres",
	Quote:       '"',
	Placeholder: render.PlaceholderDollar,
}

// QuoteIdent quotes a PostgreSQL identifier, doubling embedded double quotes.
func QuoteIdent(name string) string {
	return Dialect.QuoteIdent(name)
}

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// QuoteIdent quotes name for PostgreSQL.
func (r *Renderer) QuoteIdent(name string) string {
	return QuoteIdent(name)
}

// BuildInsert renders an INSERT statement.
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

// BuildAlterSequence renders an ALTER SEQUENCE statement. Utility
// statements cannot take bind parameters, so numbers are written inline
// and the returned Values is empty.
func (r *Renderer) BuildAlterSequence(seq *types.AlterSequence) (*types.QueryResult, error) {
	if err := seq.Validate(); err != nil {
		return nil, render.Invalid("ALTER SEQUENCE", err)
	}
	w := render.NewWriter(Dialect)
	w.WriteString("ALTER SEQUENCE ")
	w.Column(seq.SequenceName())
	for _, opt := range seq.Options() {
		w.WriteString(" ")
		writeSequenceOption(w, opt)
	}
	return w.Result(), nil
}

func writeSequenceOption(w *render.Writer, opt types.SequenceOption) {
	n := strconv.FormatInt(opt.N, 10)
	switch opt.Kind {
	case types.SeqRestart:
		w.WriteString("RESTART")
	case types.SeqRestartWith:
		w.WriteString("RESTART WITH " + n)
	case types.SeqIncrementBy:
		w.WriteString("INCREMENT BY " + n)
	case types.SeqMinValue:
		w.WriteString("MINVALUE " + n)
	case types.SeqNoMinValue:
		w.WriteString("NO MINVALUE")
	case types.SeqMaxValue:
		w.WriteString("MAXVALUE " + n)
	case types.SeqNoMaxValue:
		w.WriteString("NO MAXVALUE")
	case types.SeqCache:
		w.WriteString("CACHE " + n)
	case types.SeqCycle:
		w.WriteString("CYCLE")
	case types.SeqNoCycle:
		w.WriteString("NO CYCLE")
	case types.SeqOwnedByColumn:
		w.WriteString("OWNED BY ")
		w.Column(opt.Owner)
	case types.SeqOwnedByNone:
		w.WriteString("OWNED BY NONE")
	}
}

// BuildCreateTable renders a CREATE TABLE statement.
func (r *Renderer) BuildCreateTable(ct *types.CreateTable) (*types.QueryResult, error) {
	w := render.NewWriter(Dialect)
	if err := w.CreateTable(ct); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder: render.PlaceholderDollar,
		Upsert:      render.UpsertOnConflict,
		Returning:   true,
		Sequences:   true,
		QuoteChar:   Dialect.Quote,
	}
}
