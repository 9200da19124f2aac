// Package testing provides test utilities for sqlbuild and its schema
// editors.
package testing

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
	"sync"
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqlbuild"
)

// TestProject returns a DBML project describing the users, posts and
// orders tables used across the test suites.
func TestProject(t testing.TB) *dbml.Project {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar(64)"))
	users.AddColumn(dbml.NewColumn("email", "varchar(128)"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar(255)"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	project.AddTable(posts)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar(16)"))
	project.AddTable(orders)

	return project
}

// AssertSQL compares expected and actual SQL, reporting both on mismatch.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertValues checks the parameter list element by element.
func AssertValues(t testing.TB, expected, actual sqlbuild.Values) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("Values mismatch:\nExpected: %v\nActual:   %v", expected, actual)
	}
}

// AssertBuild renders stmt for d and checks both halves of the result.
func AssertBuild(t testing.TB, d sqlbuild.Dialect, stmt sqlbuild.Statement, sql string, values ...sqlbuild.Value) {
	t.Helper()
	result, err := sqlbuild.Build(d, stmt)
	if err != nil {
		t.Fatalf("Build(%s) error = %v", d, err)
	}
	AssertSQL(t, sql, result.SQL)
	AssertValues(t, values, result.Values)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorContains checks that the error message contains substr.
func AssertErrorContains(t testing.TB, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanicsWithMessage verifies that fn panics with a string or error
// containing substr.
func AssertPanicsWithMessage(t testing.TB, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}

// RecordingExecutor is a database/sql style executor that records every
// statement it is handed. Err, when set, is returned from each call.
type RecordingExecutor struct {
	Err error

	mu    sync.Mutex
	stmts []string
}

// ExecContext records query and returns Err.
func (r *RecordingExecutor) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stmts = append(r.stmts, query)
	if r.Err != nil {
		return nil, r.Err
	}
	return driver.RowsAffected(0), nil
}

// Statements returns a copy of the recorded statements in call order.
func (r *RecordingExecutor) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stmts...)
}
