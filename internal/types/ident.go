package types

// Identifier is an opaque reference to a table or column.
// Name is required; Table qualifies a column; Alias names the reference.
// Identifiers are quoted by the renderer, never by the caller.
type Identifier struct {
	Name  string
	Table string
	Alias string
}

// Ident creates a bare identifier.
func Ident(name string) Identifier {
	return Identifier{Name: name}
}

// Col creates a table-qualified column reference.
func Col(table, name string) Identifier {
	return Identifier{Name: name, Table: table}
}

// Aliased creates an identifier carrying an alias.
func Aliased(name, alias string) Identifier {
	return Identifier{Name: name, Alias: alias}
}

// As returns a copy of id with the given alias.
func (id Identifier) As(alias string) Identifier {
	id.Alias = alias
	return id
}

// IsZero reports whether the identifier has no name.
func (id Identifier) IsZero() bool {
	return id.Name == ""
}

// Idents converts names into bare identifiers.
func Idents(names ...string) []Identifier {
	out := make([]Identifier, len(names))
	for i, n := range names {
		out[i] = Ident(n)
	}
	return out
}
