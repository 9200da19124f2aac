package types

import "fmt"

// Select is the SELECT statement AST. It also serves as the subquery
// source of INSERT ... SELECT.
type Select struct {
	limit    *int64
	offset   *int64
	from     Identifier
	columns  []Identifier
	where    []Condition
	ordering []OrderBy
	distinct bool
}

// NewSelect creates an empty SELECT statement.
func NewSelect() *Select {
	return &Select{}
}

// From sets the source table. The last call wins.
func (s *Select) From(table Identifier) *Select {
	s.from = table
	return s
}

// Column appends a projected column.
func (s *Select) Column(col Identifier) *Select {
	s.columns = append(s.columns, col)
	return s
}

// Columns appends projected columns by name.
func (s *Select) Columns(names ...string) *Select {
	s.columns = append(s.columns, Idents(names...)...)
	return s
}

// Distinct sets the DISTINCT flag.
func (s *Select) Distinct() *Select {
	s.distinct = true
	return s
}

// Where appends a condition. Conditions are combined with AND.
func (s *Select) Where(c Condition) *Select {
	s.where = append(s.where, c)
	return s
}

// OrderBy appends an ordering term.
func (s *Select) OrderBy(col Identifier, dir Direction) *Select {
	s.ordering = append(s.ordering, OrderBy{Column: col, Direction: dir})
	return s
}

// Limit sets the row limit.
func (s *Select) Limit(n int64) *Select {
	s.limit = &n
	return s
}

// Offset sets the row offset.
func (s *Select) Offset(n int64) *Select {
	s.offset = &n
	return s
}

// Take moves the statement into a new value and resets s.
func (s *Select) Take() *Select {
	out := *s
	*s = Select{}
	return &out
}

// Clone returns a deep copy of s.
func (s *Select) Clone() *Select {
	out := *s
	out.columns = append([]Identifier(nil), s.columns...)
	out.where = append([]Condition(nil), s.where...)
	out.ordering = append([]OrderBy(nil), s.ordering...)
	if s.limit != nil {
		n := *s.limit
		out.limit = &n
	}
	if s.offset != nil {
		n := *s.offset
		out.offset = &n
	}
	return &out
}

// Table returns the source table.
func (s *Select) Table() Identifier { return s.from }

// ColumnList returns the projection. Empty means all columns.
func (s *Select) ColumnList() []Identifier { return s.columns }

// IsDistinct reports whether DISTINCT is set.
func (s *Select) IsDistinct() bool { return s.distinct }

// Conditions returns the WHERE conditions.
func (s *Select) Conditions() []Condition { return s.where }

// Ordering returns the ORDER BY terms.
func (s *Select) Ordering() []OrderBy { return s.ordering }

// LimitValue returns the limit, or nil.
func (s *Select) LimitValue() *int64 { return s.limit }

// OffsetValue returns the offset, or nil.
func (s *Select) OffsetValue() *int64 { return s.offset }

// Validate checks that the statement can be rendered.
func (s *Select) Validate() error {
	if s == nil {
		return fmt.Errorf("nil SELECT statement")
	}
	if s.from.IsZero() {
		return fmt.Errorf("SELECT requires a source table")
	}
	if s.limit != nil && *s.limit < 0 {
		return fmt.Errorf("LIMIT must not be negative")
	}
	if s.offset != nil && *s.offset < 0 {
		return fmt.Errorf("OFFSET must not be negative")
	}
	return validateConditions(s.where)
}

// Accept implements Statement.
func (s *Select) Accept(b StatementBuilder) (*QueryResult, error) {
	return b.BuildSelect(s)
}

func validateConditions(conds []Condition) error {
	for _, c := range conds {
		if c.Column.IsZero() {
			return fmt.Errorf("condition requires a column")
		}
		switch c.Operator {
		case EQ, NE, GT, GE, LT, LE, LIKE, IsNull, IsNotNull:
		case IN:
			if len(c.List) == 0 {
				return fmt.Errorf("IN condition on %q requires at least one value", c.Column.Name)
			}
		default:
			return fmt.Errorf("unsupported operator: %s", c.Operator)
		}
	}
	return nil
}
