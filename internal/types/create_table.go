package types

import "fmt"

// ColumnDef describes one column of a CREATE TABLE statement.
// Type and Default are raw SQL fragments supplied by trusted callers
// (the migration engine), never by end users.
type ColumnDef struct {
	Name       string
	Type       string
	Default    string
	NotNull    bool
	PrimaryKey bool
	Unique     bool
}

// CreateTable is the CREATE TABLE statement AST.
type CreateTable struct {
	table       Identifier
	suffix      string
	columns     []ColumnDef
	primaryKey  []string
	ifNotExists bool
}

// NewCreateTable creates an empty CREATE TABLE statement.
func NewCreateTable() *CreateTable {
	return &CreateTable{}
}

// Table sets the table name. The last call wins.
func (c *CreateTable) Table(table Identifier) *CreateTable {
	c.table = table
	return c
}

// IfNotExists adds IF NOT EXISTS.
func (c *CreateTable) IfNotExists() *CreateTable {
	c.ifNotExists = true
	return c
}

// Column appends a column definition.
func (c *CreateTable) Column(def ColumnDef) *CreateTable {
	c.columns = append(c.columns, def)
	return c
}

// Columns appends column definitions in order.
func (c *CreateTable) Columns(defs ...ColumnDef) *CreateTable {
	c.columns = append(c.columns, defs...)
	return c
}

// PrimaryKey declares a table-level primary key.
func (c *CreateTable) PrimaryKey(cols ...string) *CreateTable {
	c.primaryKey = append([]string(nil), cols...)
	return c
}

// Suffix sets a raw clause appended after the closing parenthesis.
func (c *CreateTable) Suffix(raw string) *CreateTable {
	c.suffix = raw
	return c
}

// Take moves the statement into a new value and resets c.
func (c *CreateTable) Take() *CreateTable {
	out := *c
	*c = CreateTable{}
	return &out
}

// Target returns the table being created.
func (c *CreateTable) Target() Identifier { return c.table }

// Definitions returns the column definitions.
func (c *CreateTable) Definitions() []ColumnDef { return c.columns }

// PrimaryKeyColumns returns the table-level primary key.
func (c *CreateTable) PrimaryKeyColumns() []string { return c.primaryKey }

// SuffixClause returns the raw trailing clause.
func (c *CreateTable) SuffixClause() string { return c.suffix }

// IsIfNotExists reports whether IF NOT EXISTS is set.
func (c *CreateTable) IsIfNotExists() bool { return c.ifNotExists }

// Validate checks that the statement can be rendered.
func (c *CreateTable) Validate() error {
	if c == nil {
		return fmt.Errorf("nil CREATE TABLE statement")
	}
	if c.table.IsZero() {
		return fmt.Errorf("CREATE TABLE requires a table name")
	}
	if len(c.columns) == 0 {
		return fmt.Errorf("CREATE TABLE %q requires at least one column", c.table.Name)
	}
	seen := make(map[string]bool, len(c.columns))
	inlinePK := 0
	for _, col := range c.columns {
		if col.Name == "" || col.Type == "" {
			return fmt.Errorf("column definitions require a name and a type")
		}
		if seen[col.Name] {
			return fmt.Errorf("duplicate column %q", col.Name)
		}
		seen[col.Name] = true
		if col.PrimaryKey {
			inlinePK++
		}
	}
	if inlinePK > 1 || (inlinePK == 1 && len(c.primaryKey) > 0) {
		return fmt.Errorf("multiple primary keys for table %q", c.table.Name)
	}
	for _, pk := range c.primaryKey {
		if !seen[pk] {
			return fmt.Errorf("primary key column %q is not defined", pk)
		}
	}
	return nil
}

// Accept implements Statement.
func (c *CreateTable) Accept(b StatementBuilder) (*QueryResult, error) {
	return b.BuildCreateTable(c)
}
