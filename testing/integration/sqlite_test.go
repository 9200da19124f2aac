package integration

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zoobzio/sqlbuild"
	"github.com/zoobzio/sqlbuild/config"
	"github.com/zoobzio/sqlbuild/schema"
)

func setupSQLite(t *testing.T) *schema.SQLiteEditor {
	t.Helper()

	cfg := &config.Config{SQLite: &config.SQLiteConfig{
		Path:    filepath.Join(t.TempDir(), "integration.db"),
		Pragmas: []string{"foreign_keys(1)", "busy_timeout(5000)"},
	}}
	f, closeFn, err := config.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(closeFn)

	editor := f.SQLite()
	stmt, err := editor.CreateTableSQL("events", []schema.Column{
		{Name: "id", Type: "TEXT", PrimaryKey: true},
		{Name: "kind", Type: "TEXT", NotNull: true},
		{Name: "payload", Type: "BLOB"},
		{Name: "at", Type: "TIMESTAMP"},
		{Name: "seen", Type: "INTEGER", NotNull: true, Default: "0"},
	})
	if err != nil {
		t.Fatalf("CreateTableSQL() error = %v", err)
	}
	if err := editor.Execute(context.Background(), stmt); err != nil {
		t.Fatalf("create events: %v", err)
	}
	return editor
}

// openSQLite opens a second handle on the same database file for reads
// and plain statement execution.
func openSQLite(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roundtrip.db")

	f, closeFn, err := config.Open(ctx, &config.Config{SQLite: &config.SQLiteConfig{Path: path}})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer closeFn()

	editor := f.SQLite()
	ddl, err := editor.CreateTableIfNotExistsSQL("events", []schema.Column{
		{Name: "id", Type: "TEXT", PrimaryKey: true},
		{Name: "kind", Type: "TEXT", NotNull: true},
		{Name: "at", Type: "TIMESTAMP"},
		{Name: "seen", Type: "INTEGER", NotNull: true, Default: "0"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := editor.Execute(ctx, ddl); err != nil {
		t.Fatalf("create: %v", err)
	}

	id := uuid.New()
	ins := sqlbuild.NewInsert().
		IntoTable(sqlbuild.Ident("events")).
		Columns("id", "kind", "at").
		MustValues(sqlbuild.UUID(id), sqlbuild.String("signup"), sqlbuild.Time(time.Now().UTC())).
		OnConflict(sqlbuild.OnConflictDoUpdate("id").Set("seen", sqlbuild.Int(1)))

	res := sqlbuild.MustBuild(sqlbuild.SQLite, ins)
	if len(res.Values) != 4 {
		t.Fatalf("Values = %v", res.Values)
	}

	db := openSQLite(t, path)
	for i := 0; i < 2; i++ {
		if _, err := db.ExecContext(ctx, res.SQL, res.Values.Args()...); err != nil {
			t.Fatalf("Exec() error = %v\nSQL: %s", err, res.SQL)
		}
	}

	sel := sqlbuild.MustBuild(sqlbuild.SQLite, sqlbuild.NewSelect().
		From(sqlbuild.Ident("events")).
		Columns("kind", "seen").
		Where(sqlbuild.Where(sqlbuild.Ident("id"), sqlbuild.EQ, sqlbuild.UUID(id))))
	var kind string
	var seen int
	if err := db.QueryRowContext(ctx, sel.SQL, sel.Values.Args()...).Scan(&kind, &seen); err != nil {
		t.Fatalf("QueryRow() error = %v\nSQL: %s", err, sel.SQL)
	}
	if kind != "signup" || seen != 1 {
		t.Errorf("got (%q, %d), want (signup, 1)", kind, seen)
	}

	del := sqlbuild.MustBuild(sqlbuild.SQLite, sqlbuild.NewDelete().
		From(sqlbuild.Ident("events")).
		Where(sqlbuild.Where(sqlbuild.Ident("id"), sqlbuild.EQ, sqlbuild.UUID(id))).
		Returning("kind"))
	if err := db.QueryRowContext(ctx, del.SQL, del.Values.Args()...).Scan(&kind); err != nil {
		t.Fatalf("DELETE RETURNING error = %v\nSQL: %s", err, del.SQL)
	}
}

func TestSQLite_AlterTable(t *testing.T) {
	editor := setupSQLite(t)
	ctx := context.Background()

	stmts := []string{
		editor.AddColumnSQL("events", schema.Column{Name: "source", Type: "TEXT"}),
		editor.RenameColumnSQL("events", "source", "origin"),
		editor.CreateIndexSQL(schema.Index{Name: "events_origin", Table: "events", Columns: []string{"origin"}, IfNotExists: true}),
		editor.DropIndexSQL("events_origin"),
		editor.DropColumnSQL("events", "origin"),
		editor.RenameTableSQL("events", "events_old"),
		editor.DropTableSQL("events_old", true),
	}
	for _, stmt := range stmts {
		if err := editor.Execute(ctx, stmt); err != nil {
			t.Fatalf("Execute(%q) error = %v", stmt, err)
		}
	}
}

func TestSQLite_ExecuteErrors(t *testing.T) {
	editor := setupSQLite(t)

	err := editor.Execute(context.Background(), "CREATE TABLEE broken (")
	if !errors.Is(err, schema.ErrSyntax) {
		t.Errorf("error = %v, want ErrSyntax", err)
	}
}
