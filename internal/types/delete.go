package types

import "fmt"

// Delete is the DELETE statement AST.
type Delete struct {
	table     Identifier
	where     []Condition
	returning Returning
}

// NewDelete creates an empty DELETE statement.
func NewDelete() *Delete {
	return &Delete{}
}

// From sets the target table. The last call wins.
func (d *Delete) From(table Identifier) *Delete {
	d.table = table
	return d
}

// Where appends a condition. Conditions are combined with AND.
func (d *Delete) Where(c Condition) *Delete {
	d.where = append(d.where, c)
	return d
}

// Returning sets an explicit RETURNING column list.
func (d *Delete) Returning(cols ...string) *Delete {
	d.returning = returningColumns(Idents(cols...))
	return d
}

// ReturningAll sets RETURNING *.
func (d *Delete) ReturningAll() *Delete {
	d.returning = Returning{Kind: ReturningAll}
	return d
}

// Take moves the statement into a new value and resets d.
func (d *Delete) Take() *Delete {
	out := *d
	*d = Delete{}
	return &out
}

// Target returns the table rows are deleted from.
func (d *Delete) Target() Identifier { return d.table }

// Conditions returns the WHERE conditions.
func (d *Delete) Conditions() []Condition { return d.where }

// ReturningClause returns the RETURNING clause.
func (d *Delete) ReturningClause() Returning { return d.returning }

// Validate checks that the statement can be rendered.
func (d *Delete) Validate() error {
	if d == nil {
		return fmt.Errorf("nil DELETE statement")
	}
	if d.table.IsZero() {
		return fmt.Errorf("DELETE requires a target table")
	}
	return validateConditions(d.where)
}

// Accept implements Statement.
func (d *Delete) Accept(b StatementBuilder) (*QueryResult, error) {
	return b.BuildDelete(d)
}
