package render

import (
	"errors"
	"testing"

	"github.com/zoobzio/sqlbuild/internal/types"
)

var (
	dollar = Dialect{Name: "dollar", Quote: '"', Placeholder: PlaceholderDollar}
	qmark  = Dialect{Name: "qmark", Quote: '`', Placeholder: PlaceholderQuestion, NoLimit: "-1"}
)

func TestArgs_Numbering(t *testing.T) {
	a := NewArgs(PlaceholderDollar)
	for i, want := range []string{"$1", "$2", "$3"} {
		if got := a.Add(types.Int(int64(i))); got != want {
			t.Errorf("Add() = %s, want %s", got, want)
		}
	}
	if len(a.Values()) != 3 {
		t.Errorf("len(Values()) = %d, want 3", len(a.Values()))
	}

	q := NewArgs(PlaceholderQuestion)
	if got := q.Add(types.Null()); got != "?" {
		t.Errorf("Add() = %s, want ?", got)
	}
}

func TestWriter_Select(t *testing.T) {
	sel := types.NewSelect().
		From(types.Aliased("users", "u")).
		Column(types.Col("u", "id")).
		Column(types.Ident("name").As("n")).
		Where(types.Where(types.Ident("age"), types.GE, types.Int(18))).
		Where(types.WhereIn(types.Ident("role"), types.String("a"), types.String("b"))).
		Where(types.WhereNull(types.Ident("deleted_at"))).
		OrderBy(types.Ident("name"), "").
		Limit(10).
		Offset(20)

	w := NewWriter(dollar)
	if err := w.Select(sel); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	want := `SELECT "u"."id", "name" AS "n" FROM "users" AS "u" WHERE "age" >= $1 AND "role" IN ($2, $3) AND "deleted_at" IS NULL ORDER BY "name" ASC LIMIT 10 OFFSET 20`
	res := w.Result()
	if res.SQL != want {
		t.Errorf("SQL = %s\nwant  %s", res.SQL, want)
	}
	if len(res.Values) != 3 {
		t.Errorf("len(Values) = %d, want 3", len(res.Values))
	}
}

func TestWriter_OffsetWithoutLimit(t *testing.T) {
	sel := types.NewSelect().From(types.Ident("t")).Offset(5)

	w := NewWriter(qmark)
	if err := w.Select(sel); err != nil {
		t.Fatal(err)
	}
	if want := "SELECT * FROM `t` LIMIT -1 OFFSET 5"; w.String() != want {
		t.Errorf("SQL = %s, want %s", w.String(), want)
	}

	w = NewWriter(dollar)
	if err := w.Select(sel); err != nil {
		t.Fatal(err)
	}
	if want := `SELECT * FROM "t" OFFSET 5`; w.String() != want {
		t.Errorf("SQL = %s, want %s", w.String(), want)
	}
}

func TestWriter_SelectInvalid(t *testing.T) {
	err := NewWriter(dollar).Select(types.NewSelect())

	var invalid InvalidStatementError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidStatementError", err)
	}
	if invalid.Statement != "SELECT" {
		t.Errorf("Statement = %q, want SELECT", invalid.Statement)
	}
}

func TestWriter_InsertSharesPlaceholders(t *testing.T) {
	sub := types.NewSelect().From(types.Ident("users")).Columns("id").
		Where(types.Where(types.Ident("active"), types.EQ, types.Bool(true)))
	ins := types.NewInsert().IntoTable(types.Ident("archive")).Columns("id").FromSubquery(sub).
		OnConflict(types.OnConflictDoUpdate("id").Set("note", types.String("dup")).SetExcluded("name"))

	w := NewWriter(dollar)
	if err := w.Insert(ins, OnConflict); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	want := `INSERT INTO "archive" ("id") SELECT "id" FROM "users" WHERE "active" = $1 ON CONFLICT ("id") DO UPDATE SET "note" = $2, "name" = EXCLUDED."name"`
	if w.String() != want {
		t.Errorf("SQL = %s\nwant  %s", w.String(), want)
	}
}

func TestWriter_InsertWithoutConflictWriter(t *testing.T) {
	ins := types.NewInsert().IntoTable(types.Ident("t")).MustValues(types.Int(1)).
		OnConflict(types.OnConflictDoNothing())

	err := NewWriter(dollar).Insert(ins, nil)

	var unsupported UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedFeatureError", err)
	}
}

func TestOnConflict_DoUpdateNeedsTarget(t *testing.T) {
	ins := types.NewInsert().IntoTable(types.Ident("t")).MustValues(types.Int(1))
	err := OnConflict(NewWriter(dollar), ins, types.OnConflictDoUpdate().SetExcluded("a"))
	if err == nil {
		t.Error("expected error for DO UPDATE without conflict columns")
	}
}

func TestWriter_CreateTable(t *testing.T) {
	ct := types.NewCreateTable().Table(types.Ident("events")).IfNotExists().
		Column(types.ColumnDef{Name: "id", Type: "BIGINT", NotNull: true}).
		Column(types.ColumnDef{Name: "kind", Type: "TEXT", Default: "'misc'"}).
		Column(types.ColumnDef{Name: "slug", Type: "TEXT", Unique: true}).
		PrimaryKey("id").
		Suffix("WITHOUT ROWID")

	w := NewWriter(dollar)
	if err := w.CreateTable(ct); err != nil {
		t.Fatalf("CreateTable() error = %v", err)
	}
	want := `CREATE TABLE IF NOT EXISTS "events" ("id" BIGINT NOT NULL, "kind" TEXT DEFAULT 'misc', "slug" TEXT UNIQUE, PRIMARY KEY ("id")) WITHOUT ROWID`
	if w.String() != want {
		t.Errorf("SQL = %s\nwant  %s", w.String(), want)
	}
}

func TestWriter_ResultCopiesValues(t *testing.T) {
	w := NewWriter(dollar)
	w.Bind(types.Int(1))
	first := w.Result()
	w.Bind(types.Int(2))

	if len(first.Values) != 1 {
		t.Errorf("earlier result changed: %v", first.Values)
	}
}
