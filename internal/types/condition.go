package types

// Operator represents a comparison operator in a WHERE condition.
type Operator string

const (
	EQ        Operator = "="
	NE        Operator = "<>"
	GT        Operator = ">"
	GE        Operator = ">="
	LT        Operator = "<"
	LE        Operator = "<="
	LIKE      Operator = "LIKE"
	IN        Operator = "IN"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
)

// Condition compares a column against bound values.
// Values are always parameters, never literals. IN uses List; the unary
// IS NULL operators use neither.
type Condition struct {
	Column   Identifier
	Operator Operator
	Value    Value
	List     Values
}

// Where creates a binary condition.
func Where(col Identifier, op Operator, v Value) Condition {
	return Condition{Column: col, Operator: op, Value: v}
}

// WhereIn creates an IN condition.
func WhereIn(col Identifier, list ...Value) Condition {
	return Condition{Column: col, Operator: IN, List: Values(list).Clone()}
}

// WhereNull creates an IS NULL condition.
func WhereNull(col Identifier) Condition {
	return Condition{Column: col, Operator: IsNull}
}

// WhereNotNull creates an IS NOT NULL condition.
func WhereNotNull(col Identifier) Condition {
	return Condition{Column: col, Operator: IsNotNull}
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderBy represents an ORDER BY term.
type OrderBy struct {
	Column    Identifier
	Direction Direction
}
