package schema

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrorKind classifies an execution failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConnection
	KindSyntax
	KindPermission
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindSyntax:
		return "syntax"
	case KindPermission:
		return "permission"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against an *ExecError of the same kind.
var (
	ErrConnection     = errors.New("schema: connection failure")
	ErrSyntax         = errors.New("schema: statement rejected as invalid")
	ErrPermission     = errors.New("schema: permission denied")
	ErrEmptyStatement = errors.New("schema: empty statement")
)

// ExecError is returned by Editor.Execute.
type ExecError struct {
	Err      error
	SQL      string
	Database DatabaseType
	Kind     ErrorKind
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("schema: %s %s error: %v", e.Database, e.Kind, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *ExecError) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Kind == KindConnection
	case ErrSyntax:
		return e.Kind == KindSyntax
	case ErrPermission:
		return e.Kind == KindPermission
	}
	return false
}

func newExecError(db DatabaseType, stmt string, err error) *ExecError {
	return &ExecError{Database: db, SQL: stmt, Kind: classify(err), Err: err}
}

// classify maps a driver error onto an ErrorKind.
func classify(err error) ErrorKind {
	if kind := classifyTransport(err); kind != KindUnknown {
		return kind
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr.Code)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return classifyMySQL(myErr.Number)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(liteErr.Code(), liteErr.Error())
	}

	return KindUnknown
}

func classifyTransport(err error) ErrorKind {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, mysql.ErrInvalidConn),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return KindConnection
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return KindConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}
	return KindUnknown
}

// classifyPostgres uses the SQLSTATE code; CockroachDB reports the same codes.
func classifyPostgres(code string) ErrorKind {
	switch {
	case code == "42501":
		return KindPermission
	case strings.HasPrefix(code, "28"):
		return KindPermission
	case strings.HasPrefix(code, "08"), code == "57P01", code == "57P02", code == "57P03":
		return KindConnection
	case strings.HasPrefix(code, "42"):
		return KindSyntax
	}
	return KindUnknown
}

func classifyMySQL(number uint16) ErrorKind {
	switch number {
	case 1064, 1149: // ER_PARSE_ERROR, ER_SYNTAX_ERROR
		return KindSyntax
	case 1044, 1045, 1142, 1143, 1227: // access denied family
		return KindPermission
	case 1040, 1053, 1152, 1153, 1158, 1159, 1160, 1161:
		return KindConnection
	}
	return KindUnknown
}

func classifySQLite(code int, msg string) ErrorKind {
	switch code & 0xff {
	case sqlite3.SQLITE_PERM, sqlite3.SQLITE_AUTH, sqlite3.SQLITE_READONLY:
		return KindPermission
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_IOERR:
		return KindConnection
	case sqlite3.SQLITE_ERROR:
		if strings.Contains(msg, "syntax error") || strings.Contains(msg, "incomplete input") {
			return KindSyntax
		}
	}
	return KindUnknown
}
