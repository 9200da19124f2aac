package types

import "fmt"

// InsertSource is either a list of value rows or a subquery, never both.
type InsertSource struct {
	subquery *Select
	rows     [][]Value
}

// Rows returns the accumulated rows and false if the source is a subquery.
func (s InsertSource) Rows() ([][]Value, bool) {
	if s.subquery != nil {
		return nil, false
	}
	return s.rows, true
}

// Subquery returns the SELECT feeding the insert, or nil.
func (s InsertSource) Subquery() *Select {
	return s.subquery
}

// ConflictAction represents what to do when an insert conflicts.
type ConflictAction string

const (
	DoNothing ConflictAction = "DO NOTHING"
	DoUpdate  ConflictAction = "DO UPDATE"
)

// Assignment is a column = value pair.
type Assignment struct {
	Column Identifier
	Value  Value
}

// OnConflict represents an upsert policy.
// Excluded columns are assigned from the row that failed to insert.
type OnConflict struct {
	Action   ConflictAction
	Columns  []Identifier
	Updates  []Assignment
	Excluded []Identifier
}

// OnConflictDoNothing creates a DO NOTHING policy on the given target columns.
func OnConflictDoNothing(cols ...string) *OnConflict {
	return &OnConflict{Action: DoNothing, Columns: Idents(cols...)}
}

// OnConflictDoUpdate creates a DO UPDATE policy on the given target columns.
func OnConflictDoUpdate(cols ...string) *OnConflict {
	return &OnConflict{Action: DoUpdate, Columns: Idents(cols...)}
}

// Set adds an explicit assignment to a DO UPDATE policy.
func (c *OnConflict) Set(col string, v Value) *OnConflict {
	c.Updates = append(c.Updates, Assignment{Column: Ident(col), Value: v})
	return c
}

// SetExcluded assigns each column from the conflicting row.
func (c *OnConflict) SetExcluded(cols ...string) *OnConflict {
	c.Excluded = append(c.Excluded, Idents(cols...)...)
	return c
}

func (c *OnConflict) clone() *OnConflict {
	if c == nil {
		return nil
	}
	return &OnConflict{
		Action:   c.Action,
		Columns:  append([]Identifier(nil), c.Columns...),
		Updates:  append([]Assignment(nil), c.Updates...),
		Excluded: append([]Identifier(nil), c.Excluded...),
	}
}

// Insert is the INSERT statement AST.
type Insert struct {
	conflict  *OnConflict
	source    InsertSource
	table     Identifier
	columns   []Identifier
	returning Returning
}

// NewInsert creates an empty INSERT statement.
func NewInsert() *Insert {
	return &Insert{}
}

// IntoTable sets the target table. The last call wins.
func (i *Insert) IntoTable(table Identifier) *Insert {
	i.table = table
	return i
}

// Column appends a participating column.
func (i *Insert) Column(name string) *Insert {
	i.columns = append(i.columns, Ident(name))
	return i
}

// Columns appends participating columns in order.
func (i *Insert) Columns(names ...string) *Insert {
	i.columns = append(i.columns, Idents(names...)...)
	return i
}

// Values appends one row. It fails when columns were declared and the row
// length differs from the column count. A subquery source is discarded.
func (i *Insert) Values(row ...Value) (*Insert, error) {
	if len(i.columns) > 0 && len(row) != len(i.columns) {
		return nil, fmt.Errorf("insert into %q: row has %d values, want %d (one per column)",
			i.table.Name, len(row), len(i.columns))
	}
	i.source.subquery = nil
	i.source.rows = append(i.source.rows, append([]Value(nil), row...))
	return i, nil
}

// MustValues is like Values but panics on an arity mismatch.
func (i *Insert) MustValues(row ...Value) *Insert {
	if _, err := i.Values(row...); err != nil {
		panic(err)
	}
	return i
}

// FromSubquery feeds the insert from a SELECT, discarding accumulated rows.
func (i *Insert) FromSubquery(sel *Select) *Insert {
	i.source = InsertSource{subquery: sel}
	return i
}

// Returning sets an explicit RETURNING column list.
func (i *Insert) Returning(cols ...string) *Insert {
	i.returning = returningColumns(Idents(cols...))
	return i
}

// ReturningAll sets RETURNING *.
func (i *Insert) ReturningAll() *Insert {
	i.returning = Returning{Kind: ReturningAll}
	return i
}

// ReturningCol sets RETURNING to a single column.
func (i *Insert) ReturningCol(col Identifier) *Insert {
	i.returning = returningColumns([]Identifier{col})
	return i
}

// OnConflict attaches an upsert policy.
func (i *Insert) OnConflict(c *OnConflict) *Insert {
	i.conflict = c
	return i
}

// Take moves the statement into a new value and resets i.
func (i *Insert) Take() *Insert {
	out := *i
	*i = Insert{}
	return &out
}

// Clone returns a deep copy of i.
func (i *Insert) Clone() *Insert {
	out := &Insert{
		table:     i.table,
		columns:   append([]Identifier(nil), i.columns...),
		returning: i.returning.clone(),
		conflict:  i.conflict.clone(),
	}
	if i.source.subquery != nil {
		out.source.subquery = i.source.subquery.Clone()
	}
	for _, row := range i.source.rows {
		out.source.rows = append(out.source.rows, append([]Value(nil), row...))
	}
	return out
}

// GetValues returns the accumulated rows in insertion order, or false when
// the source is a subquery.
func (i *Insert) GetValues() ([][]Value, bool) {
	return i.source.Rows()
}

// Table returns the target.
func (i *Insert) Table() Identifier { return i.table }

// ColumnList returns the declared columns.
func (i *Insert) ColumnList() []Identifier { return i.columns }

// Source returns the row source.
func (i *Insert) Source() InsertSource { return i.source }

// ReturningClause returns the RETURNING clause.
func (i *Insert) ReturningClause() Returning { return i.returning }

// Conflict returns the upsert policy, or nil.
func (i *Insert) Conflict() *OnConflict { return i.conflict }

// Validate checks that the statement can be rendered.
func (i *Insert) Validate() error {
	if i == nil {
		return fmt.Errorf("nil INSERT statement")
	}
	if i.table.IsZero() {
		return fmt.Errorf("INSERT requires a target table")
	}
	if i.source.subquery != nil {
		return i.source.subquery.Validate()
	}
	if len(i.source.rows) == 0 {
		return fmt.Errorf("INSERT requires at least one value row or a subquery")
	}
	width := len(i.columns)
	if width == 0 {
		width = len(i.source.rows[0])
	}
	if width == 0 {
		return fmt.Errorf("INSERT value rows must hold at least one value")
	}
	for n, row := range i.source.rows {
		if len(row) != width {
			return fmt.Errorf("value row %d has %d values, want %d", n, len(row), width)
		}
	}
	if i.conflict != nil && i.conflict.Action == DoUpdate &&
		len(i.conflict.Updates) == 0 && len(i.conflict.Excluded) == 0 {
		return fmt.Errorf("ON CONFLICT DO UPDATE requires at least one assignment")
	}
	return nil
}

// Accept implements Statement.
func (i *Insert) Accept(b StatementBuilder) (*QueryResult, error) {
	return b.BuildInsert(i)
}
