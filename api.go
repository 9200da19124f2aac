// Package sqlbuild provides a database-agnostic SQL statement builder.
//
// Statements are built as dialect-blind ASTs through chained calls and are
// rendered to SQL text plus a positional parameter list only when handed to
// a dialect. The same statement can be rendered any number of times, for
// any dialect; rendering never mutates it.
//
// # Basic Usage
//
//	ins := sqlbuild.NewInsert().
//		IntoTable(sqlbuild.Ident("users")).
//		Columns("name", "email").
//		MustValues(sqlbuild.String("Alice"), sqlbuild.String("alice@example.com")).
//		ReturningAll()
//
//	result, err := sqlbuild.Build(sqlbuild.Postgres, ins)
//	// result.SQL:    INSERT INTO "users" ("name", "email") VALUES ($1, $2) RETURNING *
//	// result.Values: ["Alice", "alice@example.com"]
//
// # Dialects
//
// The set of dialects is closed: Postgres, MySQL and SQLite. PostgreSQL
// uses ordinal placeholders ($1, $2, ...); MySQL and SQLite use "?".
// Identifiers are always quoted: double quotes for PostgreSQL and SQLite,
// back-ticks for MySQL.
//
// # Fail-fast helpers
//
// Methods prefixed with Must panic where their plain counterparts return
// an error. They are meant for tests and generated code.
//
// # Schema changes
//
// DDL composition and execution live in the schema package.
package sqlbuild

import "github.com/zoobzio/sqlbuild/internal/types"

// Value is a typed scalar parameter.
type Value = types.Value

// Values is an ordered parameter list.
type Values = types.Values

// Kind identifies the populated member of a Value.
type Kind = types.Kind

// Re-export value kinds for public API.
const (
	KindNull   = types.KindNull
	KindBool   = types.KindBool
	KindInt    = types.KindInt
	KindFloat  = types.KindFloat
	KindString = types.KindString
	KindBytes  = types.KindBytes
	KindTime   = types.KindTime
	KindUUID   = types.KindUUID
)

// Value constructors.
var (
	Null        = types.Null
	Bool        = types.Bool
	Int         = types.Int
	Float       = types.Float
	String      = types.String
	Bytes       = types.Bytes
	Time        = types.Time
	UUID        = types.UUID
	ValueOf     = types.ValueOf
	MustValueOf = types.MustValueOf
)

// Identifier references a table or column.
type Identifier = types.Identifier

// Identifier constructors.
var (
	Ident   = types.Ident
	Col     = types.Col
	Aliased = types.Aliased
)

// Statement is any renderable AST node.
type Statement = types.Statement

// QueryResult contains the rendered SQL and its positional parameters.
type QueryResult = types.QueryResult

// Statement types.
type (
	Insert        = types.Insert
	Select        = types.Select
	Update        = types.Update
	Delete        = types.Delete
	AlterSequence = types.AlterSequence
	CreateTable   = types.CreateTable
	ColumnDef     = types.ColumnDef
	OnConflict    = types.OnConflict
)

// Statement constructors.
var (
	NewInsert        = types.NewInsert
	NewSelect        = types.NewSelect
	NewUpdate        = types.NewUpdate
	NewDelete        = types.NewDelete
	NewAlterSequence = types.NewAlterSequence
	NewCreateTable   = types.NewCreateTable
)

// Upsert policy constructors.
var (
	OnConflictDoNothing = types.OnConflictDoNothing
	OnConflictDoUpdate  = types.OnConflictDoUpdate
)

// Condition compares a column against bound values.
type Condition = types.Condition

// Operator represents comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ        = types.EQ
	NE        = types.NE
	GT        = types.GT
	GE        = types.GE
	LT        = types.LT
	LE        = types.LE
	LIKE      = types.LIKE
	IN        = types.IN
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull
)

// Condition constructors.
var (
	Where        = types.Where
	WhereIn      = types.WhereIn
	WhereNull    = types.WhereNull
	WhereNotNull = types.WhereNotNull
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)
