package render

import (
	"strconv"
	"strings"

	"github.com/zoobzio/sqlbuild/internal/types"
)

// Dialect carries the lexical rules a Writer needs.
type Dialect struct {
	Name        string
	Quote       byte
	Placeholder PlaceholderStyle
	// NoLimit is written as the LIMIT when only OFFSET is set. Empty means
	// the dialect accepts OFFSET on its own.
	NoLimit string
}

// QuoteIdent quotes name with the dialect's quote character.
func (d Dialect) QuoteIdent(name string) string {
	return Quote(name, d.Quote)
}

// Writer builds one statement's SQL and its bound values.
type Writer struct {
	args    *Args
	sb      strings.Builder
	dialect Dialect
}

// NewWriter creates a Writer for d.
func NewWriter(d Dialect) *Writer {
	return &Writer{dialect: d, args: NewArgs(d.Placeholder)}
}

// WriteString appends raw SQL.
func (w *Writer) WriteString(s string) {
	w.sb.WriteString(s)
}

// Bind records v and writes its placeholder.
func (w *Writer) Bind(v types.Value) {
	w.sb.WriteString(w.args.Add(v))
}

// Ident writes a quoted bare name.
func (w *Writer) Ident(name string) {
	w.sb.WriteString(w.dialect.QuoteIdent(name))
}

// Column writes a possibly table-qualified column reference.
func (w *Writer) Column(id types.Identifier) {
	if id.Table != "" {
		w.Ident(id.Table)
		w.sb.WriteByte('.')
	}
	w.Ident(id.Name)
}

// Table writes a table reference with its alias, if any.
func (w *Writer) Table(id types.Identifier) {
	w.Column(id)
	if id.Alias != "" {
		w.sb.WriteString(" AS ")
		w.Ident(id.Alias)
	}
}

// ColumnList writes a comma separated list of column references.
func (w *Writer) ColumnList(ids []types.Identifier) {
	for i, id := range ids {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.Column(id)
	}
}

// Where writes " WHERE ..." for a non-empty condition list.
func (w *Writer) Where(conds []types.Condition) {
	if len(conds) == 0 {
		return
	}
	w.sb.WriteString(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			w.sb.WriteString(" AND ")
		}
		w.Condition(c)
	}
}

// Condition writes a single comparison.
func (w *Writer) Condition(c types.Condition) {
	w.Column(c.Column)
	switch c.Operator {
	case types.IsNull, types.IsNotNull:
		w.sb.WriteByte(' ')
		w.sb.WriteString(string(c.Operator))
	case types.IN:
		w.sb.WriteString(" IN (")
		for i, v := range c.List {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.Bind(v)
		}
		w.sb.WriteByte(')')
	default:
		w.sb.WriteByte(' ')
		w.sb.WriteString(string(c.Operator))
		w.sb.WriteByte(' ')
		w.Bind(c.Value)
	}
}

// Assignments writes "col = placeholder" pairs.
func (w *Writer) Assignments(sets []types.Assignment) {
	for i, a := range sets {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.Column(a.Column)
		w.sb.WriteString(" = ")
		w.Bind(a.Value)
	}
}

// Returning writes " RETURNING ..." for a non-empty clause.
func (w *Writer) Returning(r types.Returning) {
	switch r.Kind {
	case types.ReturningAll:
		w.sb.WriteString(" RETURNING *")
	case types.ReturningColumns:
		w.sb.WriteString(" RETURNING ")
		w.ColumnList(r.Columns)
	}
}

// Select writes a SELECT statement. It is used both for top-level SELECTs
// and for INSERT ... SELECT sources, sharing the placeholder sequence.
func (w *Writer) Select(s *types.Select) error {
	if err := s.Validate(); err != nil {
		return Invalid("SELECT", err)
	}

	w.sb.WriteString("SELECT ")
	if s.IsDistinct() {
		w.sb.WriteString("DISTINCT ")
	}
	if cols := s.ColumnList(); len(cols) == 0 {
		w.sb.WriteByte('*')
	} else {
		for i, col := range cols {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.Column(col)
			if col.Alias != "" {
				w.sb.WriteString(" AS ")
				w.Ident(col.Alias)
			}
		}
	}
	w.sb.WriteString(" FROM ")
	w.Table(s.Table())
	w.Where(s.Conditions())

	if order := s.Ordering(); len(order) > 0 {
		w.sb.WriteString(" ORDER BY ")
		for i, o := range order {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.Column(o.Column)
			dir := o.Direction
			if dir == "" {
				dir = types.ASC
			}
			w.sb.WriteByte(' ')
			w.sb.WriteString(string(dir))
		}
	}

	limit, offset := s.LimitValue(), s.OffsetValue()
	switch {
	case limit != nil:
		w.sb.WriteString(" LIMIT ")
		w.sb.WriteString(strconv.FormatInt(*limit, 10))
	case offset != nil && w.dialect.NoLimit != "":
		w.sb.WriteString(" LIMIT ")
		w.sb.WriteString(w.dialect.NoLimit)
	}
	if offset != nil {
		w.sb.WriteString(" OFFSET ")
		w.sb.WriteString(strconv.FormatInt(*offset, 10))
	}
	return nil
}

// Result returns the rendered SQL and a copy of the bound values.
func (w *Writer) Result() *types.QueryResult {
	return &types.QueryResult{
		SQL:    w.sb.String(),
		Values: w.args.Values().Clone(),
	}
}

// Unsupported returns an UnsupportedFeatureError for this dialect.
func (w *Writer) Unsupported(feature string, hint ...string) error {
	return NewUnsupportedFeatureError(w.dialect.Name, feature, hint...)
}

// ColumnDef writes "name type [constraints]" for a CREATE TABLE column.
func (w *Writer) ColumnDef(def types.ColumnDef) {
	w.Ident(def.Name)
	w.sb.WriteByte(' ')
	w.sb.WriteString(def.Type)
	if def.PrimaryKey {
		w.sb.WriteString(" PRIMARY KEY")
	}
	if def.NotNull && !def.PrimaryKey {
		w.sb.WriteString(" NOT NULL")
	}
	if def.Unique && !def.PrimaryKey {
		w.sb.WriteString(" UNIQUE")
	}
	if def.Default != "" {
		w.sb.WriteString(" DEFAULT ")
		w.sb.WriteString(def.Default)
	}
}

// CreateTable writes a CREATE TABLE statement. Dialects adjust column
// types before calling it where their syntax requires.
func (w *Writer) CreateTable(c *types.CreateTable) error {
	if err := c.Validate(); err != nil {
		return Invalid("CREATE TABLE", err)
	}
	w.sb.WriteString("CREATE TABLE ")
	if c.IsIfNotExists() {
		w.sb.WriteString("IF NOT EXISTS ")
	}
	w.Column(c.Target())
	w.sb.WriteString(" (")
	for i, def := range c.Definitions() {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.ColumnDef(def)
	}
	if pk := c.PrimaryKeyColumns(); len(pk) > 0 {
		w.sb.WriteString(", PRIMARY KEY (")
		w.ColumnList(types.Idents(pk...))
		w.sb.WriteByte(')')
	}
	w.sb.WriteByte(')')
	if s := c.SuffixClause(); s != "" {
		w.sb.WriteByte(' ')
		w.sb.WriteString(s)
	}
	return nil
}

// String returns the SQL written so far.
func (w *Writer) String() string {
	return w.sb.String()
}
