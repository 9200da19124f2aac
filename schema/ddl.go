package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqlbuild"
	"github.com/zoobzio/sqlbuild/internal/render"
)

// ddl composes the statements all three dialects spell alike apart from
// identifier quoting.
type ddl struct {
	lex     render.Dialect
	dialect sqlbuild.Dialect
}

func (d ddl) quote(name string) string {
	return d.lex.QuoteIdent(name)
}

func (d ddl) quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.quote(n)
	}
	return strings.Join(quoted, ", ")
}

func (d ddl) columnDef(col Column) string {
	w := render.NewWriter(d.lex)
	w.ColumnDef(col)
	return w.String()
}

// createTable renders table DDL through the CreateTable statement.
func (d ddl) createTable(table string, cols []Column, ifNotExists bool, suffix string) (string, error) {
	ct := sqlbuild.NewCreateTable().Table(sqlbuild.Ident(table)).Columns(cols...)
	if ifNotExists {
		ct.IfNotExists()
	}
	if suffix != "" {
		ct.Suffix(suffix)
	}
	result, err := sqlbuild.Build(d.dialect, ct)
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}

// CreateTableSQL composes CREATE TABLE.
func (d ddl) CreateTableSQL(table string, cols []Column) (string, error) {
	return d.createTable(table, cols, false, "")
}

// CreateTableIfNotExistsSQL composes CREATE TABLE IF NOT EXISTS.
func (d ddl) CreateTableIfNotExistsSQL(table string, cols []Column) (string, error) {
	return d.createTable(table, cols, true, "")
}

// DropTableSQL composes DROP TABLE.
func (d ddl) DropTableSQL(table string, ifExists bool) string {
	if ifExists {
		return "DROP TABLE IF EXISTS " + d.quote(table)
	}
	return "DROP TABLE " + d.quote(table)
}

// RenameTableSQL composes ALTER TABLE ... RENAME TO.
func (d ddl) RenameTableSQL(from, to string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", d.quote(from), d.quote(to))
}

// AddColumnSQL composes ALTER TABLE ... ADD COLUMN.
func (d ddl) AddColumnSQL(table string, col Column) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", d.quote(table), d.columnDef(col))
}

// DropColumnSQL composes ALTER TABLE ... DROP COLUMN.
func (d ddl) DropColumnSQL(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", d.quote(table), d.quote(column))
}

// RenameColumnSQL composes ALTER TABLE ... RENAME COLUMN.
func (d ddl) RenameColumnSQL(table, from, to string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s", d.quote(table), d.quote(from), d.quote(to))
}

func (d ddl) createIndex(idx Index, ifNotExists bool) string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if idx.Unique {
		sb.WriteString("UNIQUE ")
	}
	sb.WriteString("INDEX ")
	if ifNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(d.quote(idx.Name))
	sb.WriteString(" ON ")
	sb.WriteString(d.quote(idx.Table))
	sb.WriteString(" (")
	sb.WriteString(d.quoteList(idx.Columns))
	sb.WriteString(")")
	return sb.String()
}

// CreateTablesFromDBML composes one CREATE TABLE per table in project,
// ordered by table name. Column types are taken verbatim from the project,
// along with the pk, unique and default settings. The DBML model only
// records an explicit "null" setting, so no NOT NULL clause is emitted.
func (d ddl) CreateTablesFromDBML(project *dbml.Project) ([]string, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	tables := make([]*dbml.Table, 0, len(project.Tables))
	for _, table := range project.Tables {
		tables = append(tables, table)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })

	stmts := make([]string, 0, len(tables))
	for _, table := range tables {
		cols := make([]Column, 0, len(table.Columns))
		for _, col := range table.Columns {
			cols = append(cols, dbmlColumn(col))
		}
		stmt, err := d.CreateTableSQL(table.Name, cols)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", table.Name, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func dbmlColumn(col *dbml.Column) Column {
	c := Column{Name: col.Name, Type: col.Type}
	if st := col.Settings; st != nil {
		c.PrimaryKey = st.PrimaryKey
		c.Unique = st.Unique
		if st.Default != nil {
			c.Default = *st.Default
		}
	}
	return c
}
