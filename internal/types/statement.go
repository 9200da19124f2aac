package types

// QueryResult contains the rendered SQL and its positional parameters.
type QueryResult struct {
	SQL    string
	Values Values
}

// StatementBuilder is implemented by every dialect renderer.
type StatementBuilder interface {
	BuildInsert(*Insert) (*QueryResult, error)
	BuildSelect(*Select) (*QueryResult, error)
	BuildUpdate(*Update) (*QueryResult, error)
	BuildDelete(*Delete) (*QueryResult, error)
	BuildAlterSequence(*AlterSequence) (*QueryResult, error)
	BuildCreateTable(*CreateTable) (*QueryResult, error)
}

// Statement is any node that a StatementBuilder can render.
type Statement interface {
	Accept(b StatementBuilder) (*QueryResult, error)
}

// ReturningKind selects the shape of a RETURNING clause.
type ReturningKind uint8

const (
	ReturningNone ReturningKind = iota
	ReturningAll
	ReturningColumns
)

// Returning represents a RETURNING clause.
type Returning struct {
	Columns []Identifier
	Kind    ReturningKind
}

func returningColumns(cols []Identifier) Returning {
	if len(cols) == 0 {
		return Returning{}
	}
	return Returning{Kind: ReturningColumns, Columns: append([]Identifier(nil), cols...)}
}

func (r Returning) clone() Returning {
	r.Columns = append([]Identifier(nil), r.Columns...)
	return r
}
