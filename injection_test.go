package sqlbuild_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/sqlbuild"
)

// Identifiers are always quoted and values are always bound, so hostile
// input can only ever produce a strange identifier or a parameter.
func TestInjectionProtection(t *testing.T) {
	attempts := []struct {
		name  string
		input string
	}{
		{"DROP TABLE", "email; DROP TABLE users; --"},
		{"Union injection", "id UNION SELECT * FROM passwords"},
		{"Backtick injection", "id` FROM users; DROP TABLE users; --"},
		{"Quote injection", "id' OR '1'='1"},
		{"Double quote injection", `id" OR "1"="1`},
		{"Comment injection", "id/**/OR/**/1=1"},
	}

	for _, attempt := range attempts {
		t.Run(attempt.name, func(t *testing.T) {
			sel := sqlbuild.NewSelect().
				From(sqlbuild.Ident("users")).
				Column(sqlbuild.Ident(attempt.input)).
				Where(sqlbuild.Where(sqlbuild.Ident("name"), sqlbuild.EQ, sqlbuild.String(attempt.input)))

			for _, d := range []sqlbuild.Dialect{sqlbuild.Postgres, sqlbuild.MySQL, sqlbuild.SQLite} {
				result, err := sqlbuild.Build(d, sel)
				if err != nil {
					t.Fatalf("Build(%s) error = %v", d, err)
				}

				quoted := d.QuoteIdent(attempt.input)
				if !strings.Contains(result.SQL, quoted) {
					t.Errorf("%s: SQL %q does not contain quoted identifier %q", d, result.SQL, quoted)
				}
				if rest := strings.Replace(result.SQL, quoted, "", 1); strings.Contains(rest, attempt.input) {
					t.Errorf("%s: input leaked into SQL: %q", d, result.SQL)
				}
				if len(result.Values) != 1 || result.Values[0].Any() != attempt.input {
					t.Errorf("%s: value not bound: %v", d, result.Values)
				}
			}
		})
	}
}
