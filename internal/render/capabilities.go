package render

// PlaceholderStyle describes how a dialect marks bound parameters.
type PlaceholderStyle int

const (
	PlaceholderQuestion PlaceholderStyle = iota // ?
	PlaceholderDollar                           // $1, $2, ...
)

// UpsertStyle describes how a dialect spells an upsert.
type UpsertStyle int

const (
	UpsertNone           UpsertStyle = iota
	UpsertOnConflict                 // ON CONFLICT (...) DO ...
	UpsertOnDuplicateKey             // ON DUPLICATE KEY UPDATE
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	Placeholder PlaceholderStyle
	Upsert      UpsertStyle
	Returning   bool // RETURNING on INSERT/UPDATE/DELETE
	Sequences   bool // CREATE/ALTER SEQUENCE
	QuoteChar   byte
}
