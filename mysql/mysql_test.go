package mysql

import (
	"errors"
	"testing"

	"github.com/zoobzio/sqlbuild/internal/render"
	"github.com/zoobzio/sqlbuild/internal/types"
)

func TestQuoteIdent(t *testing.T) {
	if got := QuoteIdent("a`b"); got != "`a``b`" {
		t.Errorf("QuoteIdent() = %s", got)
	}
}

func TestBuildInsert(t *testing.T) {
	ins := types.NewInsert().IntoTable(types.Ident("users")).Columns("name", "email").
		MustValues(types.String("Alice"), types.String("alice@example.com"))

	result, err := New().BuildInsert(ins)
	if err != nil {
		t.Fatalf("BuildInsert() error = %v", err)
	}

	expected := "INSERT INTO `users` (`name`, `email`) VALUES (?, ?)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
	if len(result.Values) != 2 {
		t.Errorf("len(Values) = %d, want 2", len(result.Values))
	}
}

func TestBuildInsert_ReturningUnsupported(t *testing.T) {
	ins := types.NewInsert().IntoTable(types.Ident("users")).Column("name").
		MustValues(types.String("Alice")).
		ReturningAll()

	_, err := New().BuildInsert(ins)

	var unsupported render.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedFeatureError", err)
	}
	if unsupported.Feature != "RETURNING" {
		t.Errorf("Feature = %q, want RETURNING", unsupported.Feature)
	}
}

func TestBuildInsert_AliasedTargetUnsupported(t *testing.T) {
	ins := types.NewInsert().IntoTable(types.Aliased("users", "u")).Column("name").
		MustValues(types.String("Alice"))

	result, err := New().BuildInsert(ins)
	if result != nil {
		t.Errorf("result = %q, want nil", result.SQL)
	}
	var unsupported render.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedFeatureError", err)
	}
	if unsupported.Feature != "INSERT target alias" {
		t.Errorf("Feature = %q", unsupported.Feature)
	}
}

func TestBuildInsert_OnDuplicateKey(t *testing.T) {
	tests := []struct {
		conflict *types.OnConflict
		name     string
		expected string
	}{
		{
			name:     "do nothing uses conflict column",
			conflict: types.OnConflictDoNothing("email"),
			expected: "INSERT INTO `users` (`name`, `email`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `email` = `email`",
		},
		{
			name:     "do nothing falls back to first column",
			conflict: types.OnConflictDoNothing(),
			expected: "INSERT INTO `users` (`name`, `email`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `name` = `name`",
		},
		{
			name:     "do update",
			conflict: types.OnConflictDoUpdate("email").Set("hits", types.Int(1)).SetExcluded("name"),
			expected: "INSERT INTO `users` (`name`, `email`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `hits` = ?, `name` = VALUES(`name`)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := types.NewInsert().IntoTable(types.Ident("users")).Columns("name", "email").
				MustValues(types.String("Alice"), types.String("a@b.c")).
				OnConflict(tt.conflict)

			result, err := New().BuildInsert(ins)
			if err != nil {
				t.Fatalf("BuildInsert() error = %v", err)
			}
			if result.SQL != tt.expected {
				t.Errorf("SQL = %q, want %q", result.SQL, tt.expected)
			}
		})
	}
}

func TestBuildInsert_DoNothingWithoutColumns(t *testing.T) {
	ins := types.NewInsert().IntoTable(types.Ident("t")).MustValues(types.Int(1)).
		OnConflict(types.OnConflictDoNothing())

	if _, err := New().BuildInsert(ins); err == nil {
		t.Error("expected error when no column can serve as the no-op assignment")
	}
}

func TestBuildSelect_OffsetOnly(t *testing.T) {
	sel := types.NewSelect().From(types.Ident("users")).Offset(10)

	result, err := New().BuildSelect(sel)
	if err != nil {
		t.Fatalf("BuildSelect() error = %v", err)
	}

	expected := "SELECT * FROM `users` LIMIT 18446744073709551615 OFFSET 10"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestBuildUpdate(t *testing.T) {
	upd := types.NewUpdate().Table(types.Ident("users")).
		Set("name", types.String("Bob")).
		Where(types.Where(types.Ident("id"), types.EQ, types.Int(1)))

	result, err := New().BuildUpdate(upd)
	if err != nil {
		t.Fatalf("BuildUpdate() error = %v", err)
	}

	expected := "UPDATE `users` SET `name` = ? WHERE `id` = ?"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}

	if _, err := New().BuildUpdate(upd.ReturningAll()); err == nil {
		t.Error("expected RETURNING to be rejected")
	}
}

func TestBuildDelete(t *testing.T) {
	del := types.NewDelete().From(types.Ident("users")).
		Where(types.WhereIn(types.Ident("id"), types.Int(1), types.Int(2)))

	result, err := New().BuildDelete(del)
	if err != nil {
		t.Fatalf("BuildDelete() error = %v", err)
	}

	expected := "DELETE FROM `users` WHERE `id` IN (?, ?)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestBuildAlterSequence_Unsupported(t *testing.T) {
	seq := types.NewAlterSequence().Name(types.Ident("s")).Restart()

	_, err := New().BuildAlterSequence(seq)

	var unsupported render.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedFeatureError", err)
	}
	if unsupported.Dialect != "mysql" {
		t.Errorf("Dialect = %q, want mysql", unsupported.Dialect)
	}
}

func TestBuildCreateTable(t *testing.T) {
	ct := types.NewCreateTable().Table(types.Ident("users")).
		Column(types.ColumnDef{Name: "id", Type: "BIGINT AUTO_INCREMENT", PrimaryKey: true}).
		Suffix("ENGINE=InnoDB")

	result, err := New().BuildCreateTable(ct)
	if err != nil {
		t.Fatalf("BuildCreateTable() error = %v", err)
	}

	expected := "CREATE TABLE `users` (`id` BIGINT AUTO_INCREMENT PRIMARY KEY) ENGINE=InnoDB"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestCapabilities(t *testing.T) {
	caps := New().Capabilities()
	if caps.Returning || caps.Sequences {
		t.Errorf("Capabilities() = %+v", caps)
	}
	if caps.Upsert != render.UpsertOnDuplicateKey || caps.QuoteChar != '`' {
		t.Errorf("Capabilities() = %+v", caps)
	}
}
