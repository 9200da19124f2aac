package types

import "fmt"

// Update is the UPDATE statement AST.
type Update struct {
	table     Identifier
	sets      []Assignment
	where     []Condition
	returning Returning
}

// NewUpdate creates an empty UPDATE statement.
func NewUpdate() *Update {
	return &Update{}
}

// Table sets the target table. The last call wins.
func (u *Update) Table(table Identifier) *Update {
	u.table = table
	return u
}

// Set appends an assignment. Order is preserved.
func (u *Update) Set(col string, v Value) *Update {
	u.sets = append(u.sets, Assignment{Column: Ident(col), Value: v})
	return u
}

// Where appends a condition. Conditions are combined with AND.
func (u *Update) Where(c Condition) *Update {
	u.where = append(u.where, c)
	return u
}

// Returning sets an explicit RETURNING column list.
func (u *Update) Returning(cols ...string) *Update {
	u.returning = returningColumns(Idents(cols...))
	return u
}

// ReturningAll sets RETURNING *.
func (u *Update) ReturningAll() *Update {
	u.returning = Returning{Kind: ReturningAll}
	return u
}

// Take moves the statement into a new value and resets u.
func (u *Update) Take() *Update {
	out := *u
	*u = Update{}
	return &out
}

// Target returns the table being updated.
func (u *Update) Target() Identifier { return u.table }

// Assignments returns the SET list.
func (u *Update) Assignments() []Assignment { return u.sets }

// Conditions returns the WHERE conditions.
func (u *Update) Conditions() []Condition { return u.where }

// ReturningClause returns the RETURNING clause.
func (u *Update) ReturningClause() Returning { return u.returning }

// Validate checks that the statement can be rendered.
func (u *Update) Validate() error {
	if u == nil {
		return fmt.Errorf("nil UPDATE statement")
	}
	if u.table.IsZero() {
		return fmt.Errorf("UPDATE requires a target table")
	}
	if len(u.sets) == 0 {
		return fmt.Errorf("UPDATE requires at least one field to update")
	}
	return validateConditions(u.where)
}

// Accept implements Statement.
func (u *Update) Accept(b StatementBuilder) (*QueryResult, error) {
	return b.BuildUpdate(u)
}
