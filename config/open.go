package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/zoobzio/sqlbuild/schema"
)

// Open opens every configured pool, pings it, and returns a factory bound
// to them. close releases all pools. On error nothing is left open.
func Open(ctx context.Context, cfg *Config, opts ...schema.Option) (f *schema.Factory, closeFn func(), err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.LogLevel != "" {
		lvl, _ := cfg.Level()
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		opts = append([]schema.Option{schema.WithLogger(logger)}, opts...)
	}

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	defer func() {
		if err != nil {
			closeAll()
		}
	}()

	f = schema.NewFactory(opts...)

	if cfg.Postgres != nil {
		pool, err := openPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		f.WithPostgres(pool)
	}
	if cfg.MySQL != nil {
		db, err := openSQL(ctx, "mysql", cfg.MySQL.DSN(), cfg.MySQL.Pool)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })
		f.WithMySQL(db)
	}
	if cfg.SQLite != nil {
		pool := cfg.SQLite.Pool
		if cfg.SQLite.Path == ":memory:" {
			// every connection to :memory: is a separate database
			pool.MaxOpen = 1
		}
		db, err := openSQL(ctx, "sqlite", cfg.SQLite.DSN(), pool)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })
		f.WithSQLite(db)
	}

	return f, closeAll, nil
}

func openPostgres(ctx context.Context, cfg *PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.Pool.MaxOpen > 0 {
		poolCfg.MaxConns = int32(cfg.Pool.MaxOpen)
	}
	if cfg.Pool.MaxIdle > 0 {
		poolCfg.MinConns = int32(cfg.Pool.MaxIdle)
	}
	if cfg.Pool.MaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.Pool.MaxLifetime
	}
	if cfg.Pool.MaxIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.Pool.MaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

func openSQL(ctx context.Context, driverName, dsn string, cfg PoolConfig) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpen > 0 {
		db.SetMaxOpenConns(cfg.MaxOpen)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}
	if cfg.MaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxLifetime)
	}
	if cfg.MaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.MaxIdleTime)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return db, nil
}
