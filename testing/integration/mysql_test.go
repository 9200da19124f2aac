package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/sqlbuild"
	"github.com/zoobzio/sqlbuild/schema"
)

func setupMariaDB(t *testing.T) (*MariaDBContainer, *schema.MySQLEditor) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	mc := getMariaDBContainer(t)
	editor := schema.NewMySQLFactory(mc.db).MySQL()
	ctx := context.Background()

	if err := editor.Execute(ctx, editor.DropTableSQL("users", true)); err != nil {
		t.Fatalf("drop users: %v", err)
	}
	stmt, err := editor.CreateTableSQL("users", []schema.Column{
		{Name: "id", Type: "BIGINT AUTO_INCREMENT", PrimaryKey: true},
		{Name: "name", Type: "VARCHAR(64)", NotNull: true},
		{Name: "email", Type: "VARCHAR(128)", NotNull: true, Unique: true},
		{Name: "hits", Type: "INT", NotNull: true, Default: "0"},
	})
	if err != nil {
		t.Fatalf("CreateTableSQL() error = %v", err)
	}
	if err := editor.Execute(ctx, stmt); err != nil {
		t.Fatalf("create users: %v\nSQL: %s", err, stmt)
	}

	return mc, editor
}

func TestMariaDB_InsertAndSelect(t *testing.T) {
	mc, _ := setupMariaDB(t)
	ctx := context.Background()

	ins := sqlbuild.NewInsert().
		IntoTable(sqlbuild.Ident("users")).
		Columns("name", "email").
		MustValues(sqlbuild.String("Alice"), sqlbuild.String("alice@example.com")).
		MustValues(sqlbuild.String("Bob"), sqlbuild.String("bob@example.com")).
		MustValues(sqlbuild.String("Carol"), sqlbuild.String("carol@example.com"))

	res := sqlbuild.MustBuild(sqlbuild.MySQL, ins)
	if _, err := mc.db.ExecContext(ctx, res.SQL, res.Values.Args()...); err != nil {
		t.Fatalf("Exec() error = %v\nSQL: %s", err, res.SQL)
	}

	sel := sqlbuild.NewSelect().From(sqlbuild.Ident("users")).Columns("name").
		OrderBy(sqlbuild.Ident("name"), sqlbuild.ASC).
		Offset(1)
	res = sqlbuild.MustBuild(sqlbuild.MySQL, sel)

	rows, err := mc.db.QueryContext(ctx, res.SQL, res.Values.Args()...)
	if err != nil {
		t.Fatalf("Query() error = %v\nSQL: %s", err, res.SQL)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			t.Fatal(err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "Bob" || names[1] != "Carol" {
		t.Errorf("names = %v, want [Bob Carol]", names)
	}
}

func TestMariaDB_OnDuplicateKey(t *testing.T) {
	mc, _ := setupMariaDB(t)
	ctx := context.Background()

	upsert := func(name string) {
		ins := sqlbuild.NewInsert().
			IntoTable(sqlbuild.Ident("users")).
			Columns("name", "email").
			MustValues(sqlbuild.String(name), sqlbuild.String("dup@example.com")).
			OnConflict(sqlbuild.OnConflictDoUpdate("email").
				SetExcluded("name").
				Set("hits", sqlbuild.Int(7)))
		res := sqlbuild.MustBuild(sqlbuild.MySQL, ins)
		if _, err := mc.db.ExecContext(ctx, res.SQL, res.Values.Args()...); err != nil {
			t.Fatalf("Exec() error = %v\nSQL: %s", err, res.SQL)
		}
	}
	upsert("first")
	upsert("second")

	var name string
	var hits int
	if err := mc.db.QueryRowContext(ctx, "SELECT `name`, `hits` FROM `users` WHERE `email` = ?", "dup@example.com").Scan(&name, &hits); err != nil {
		t.Fatal(err)
	}
	if name != "second" || hits != 7 {
		t.Errorf("got (%q, %d), want (second, 7)", name, hits)
	}

	ignore := sqlbuild.NewInsert().
		IntoTable(sqlbuild.Ident("users")).
		Columns("name", "email").
		MustValues(sqlbuild.String("third"), sqlbuild.String("dup@example.com")).
		OnConflict(sqlbuild.OnConflictDoNothing("email"))
	res := sqlbuild.MustBuild(sqlbuild.MySQL, ignore)
	if _, err := mc.db.ExecContext(ctx, res.SQL, res.Values.Args()...); err != nil {
		t.Fatalf("Exec() error = %v\nSQL: %s", err, res.SQL)
	}
}

func TestMariaDB_ReturningRejected(t *testing.T) {
	setupMariaDB(t)

	_, err := sqlbuild.Build(sqlbuild.MySQL, sqlbuild.NewDelete().From(sqlbuild.Ident("users")).ReturningAll())
	var unsupported sqlbuild.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want UnsupportedFeatureError", err)
	}
}

func TestMariaDB_AlterTable(t *testing.T) {
	_, editor := setupMariaDB(t)
	ctx := context.Background()

	stmts := []string{
		editor.AddColumnSQL("users", schema.Column{Name: "nickname", Type: "VARCHAR(16)"}),
		editor.AlterColumnTypeSQL("users", "nickname", "VARCHAR(64)"),
		editor.RenameColumnSQL("users", "nickname", "handle"),
		editor.CreateIndexSQL(schema.Index{Name: "users_handle", Table: "users", Columns: []string{"handle"}}),
		editor.DropIndexSQL("users", "users_handle"),
		editor.DropColumnSQL("users", "handle"),
	}
	for _, stmt := range stmts {
		if err := editor.Execute(ctx, stmt); err != nil {
			t.Fatalf("Execute(%q) error = %v", stmt, err)
		}
	}
}

func TestMariaDB_ExecuteErrors(t *testing.T) {
	_, editor := setupMariaDB(t)

	err := editor.Execute(context.Background(), "CREATE TABLEE broken ()")
	if !errors.Is(err, schema.ErrSyntax) {
		t.Errorf("error = %v, want ErrSyntax", err)
	}
	var xerr *schema.ExecError
	if !errors.As(err, &xerr) || xerr.Database != schema.MySQL {
		t.Errorf("error = %#v", err)
	}
}
