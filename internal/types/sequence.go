package types

import "fmt"

// SequenceOptionKind identifies an ALTER SEQUENCE clause.
type SequenceOptionKind uint8

const (
	SeqRestart SequenceOptionKind = iota
	SeqRestartWith
	SeqIncrementBy
	SeqMinValue
	SeqNoMinValue
	SeqMaxValue
	SeqNoMaxValue
	SeqCache
	SeqCycle
	SeqNoCycle
	SeqOwnedByColumn
	SeqOwnedByNone
)

// SequenceOption is one ALTER SEQUENCE clause. N carries the numeric
// argument where the kind takes one; Owner carries the OWNED BY column.
type SequenceOption struct {
	Owner Identifier
	N     int64
	Kind  SequenceOptionKind
}

// AlterSequence is the ALTER SEQUENCE statement AST.
// Options are kept in call order and never checked for conflicts;
// the database decides whether a combination is legal.
type AlterSequence struct {
	name    Identifier
	options []SequenceOption
}

// NewAlterSequence creates an empty ALTER SEQUENCE statement.
func NewAlterSequence() *AlterSequence {
	return &AlterSequence{}
}

// Name sets the sequence. The last call wins.
func (a *AlterSequence) Name(seq Identifier) *AlterSequence {
	a.name = seq
	return a
}

func (a *AlterSequence) add(opt SequenceOption) *AlterSequence {
	a.options = append(a.options, opt)
	return a
}

// Restart appends RESTART.
func (a *AlterSequence) Restart() *AlterSequence {
	return a.add(SequenceOption{Kind: SeqRestart})
}

// RestartWith appends RESTART WITH n.
func (a *AlterSequence) RestartWith(n int64) *AlterSequence {
	return a.add(SequenceOption{Kind: SeqRestartWith, N: n})
}

// IncrementBy appends INCREMENT BY n.
func (a *AlterSequence) IncrementBy(n int64) *AlterSequence {
	return a.add(SequenceOption{Kind: SeqIncrementBy, N: n})
}

// MinValue appends MINVALUE n.
func (a *AlterSequence) MinValue(n int64) *AlterSequence {
	return a.add(SequenceOption{Kind: SeqMinValue, N: n})
}

// NoMinValue appends NO MINVALUE.
func (a *AlterSequence) NoMinValue() *AlterSequence {
	return a.add(SequenceOption{Kind: SeqNoMinValue})
}

// MaxValue appends MAXVALUE n.
func (a *AlterSequence) MaxValue(n int64) *AlterSequence {
	return a.add(SequenceOption{Kind: SeqMaxValue, N: n})
}

// NoMaxValue appends NO MAXVALUE.
func (a *AlterSequence) NoMaxValue() *AlterSequence {
	return a.add(SequenceOption{Kind: SeqNoMaxValue})
}

// Cache appends CACHE n.
func (a *AlterSequence) Cache(n int64) *AlterSequence {
	return a.add(SequenceOption{Kind: SeqCache, N: n})
}

// Cycle appends CYCLE.
func (a *AlterSequence) Cycle() *AlterSequence {
	return a.add(SequenceOption{Kind: SeqCycle})
}

// NoCycle appends NO CYCLE.
func (a *AlterSequence) NoCycle() *AlterSequence {
	return a.add(SequenceOption{Kind: SeqNoCycle})
}

// OwnedByColumn appends OWNED BY table.column.
func (a *AlterSequence) OwnedByColumn(table, column string) *AlterSequence {
	return a.add(SequenceOption{Kind: SeqOwnedByColumn, Owner: Col(table, column)})
}

// OwnedByNone appends OWNED BY NONE.
func (a *AlterSequence) OwnedByNone() *AlterSequence {
	return a.add(SequenceOption{Kind: SeqOwnedByNone})
}

// Take moves the statement into a new value and resets a.
func (a *AlterSequence) Take() *AlterSequence {
	out := *a
	*a = AlterSequence{}
	return &out
}

// SequenceName returns the target sequence.
func (a *AlterSequence) SequenceName() Identifier { return a.name }

// Options returns the clauses in call order.
func (a *AlterSequence) Options() []SequenceOption { return a.options }

// Validate checks that the statement can be rendered.
func (a *AlterSequence) Validate() error {
	if a == nil {
		return fmt.Errorf("nil ALTER SEQUENCE statement")
	}
	if a.name.IsZero() {
		return fmt.Errorf("ALTER SEQUENCE requires a sequence name")
	}
	if len(a.options) == 0 {
		return fmt.Errorf("ALTER SEQUENCE requires at least one option")
	}
	for _, opt := range a.options {
		if opt.Kind == SeqOwnedByColumn && (opt.Owner.Name == "" || opt.Owner.Table == "") {
			return fmt.Errorf("OWNED BY requires both a table and a column")
		}
	}
	return nil
}

// Accept implements Statement.
func (a *AlterSequence) Accept(b StatementBuilder) (*QueryResult, error) {
	return b.BuildAlterSequence(a)
}
