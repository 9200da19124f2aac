package schema

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
)

// fakePgx records statements passed to Exec.
type fakePgx struct {
	err   error
	stmts []string
	mu    sync.Mutex
}

func (f *fakePgx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stmts = append(f.stmts, sql)
	return pgconn.CommandTag{}, f.err
}

func (f *fakePgx) executed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.stmts...)
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
