// Package config loads connection settings from YAML and opens the pools a
// schema.Factory needs.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Config holds the pools to open. Any subset of the three databases may be
// configured, but at least one must be.
type Config struct {
	Postgres *PostgresConfig `yaml:"postgres,omitempty"`
	MySQL    *MySQLConfig    `yaml:"mysql,omitempty"`
	SQLite   *SQLiteConfig   `yaml:"sqlite,omitempty"`
	// LogLevel is parsed by slog.Level.UnmarshalText: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// PostgresConfig describes a PostgreSQL (or CockroachDB) pool. URL wins
// over the individual fields when set.
type PostgresConfig struct {
	Params   map[string]string `yaml:"params,omitempty"`
	URL      string            `yaml:"url,omitempty"`
	Host     string            `yaml:"host,omitempty"`
	Database string            `yaml:"database,omitempty"`
	Username string            `yaml:"username,omitempty"`
	Password string            `yaml:"password,omitempty"`
	SSLMode  string            `yaml:"ssl_mode,omitempty"`
	Pool     PoolConfig        `yaml:"pool,omitempty"`
	Port     int               `yaml:"port,omitempty"`
}

// MySQLConfig describes a MySQL or MariaDB pool.
type MySQLConfig struct {
	Params   map[string]string `yaml:"params,omitempty"`
	Host     string            `yaml:"host"`
	Database string            `yaml:"database"`
	Username string            `yaml:"username,omitempty"`
	Password string            `yaml:"password,omitempty"`
	Pool     PoolConfig        `yaml:"pool,omitempty"`
	Port     int               `yaml:"port,omitempty"`
}

// SQLiteConfig describes a SQLite database file, or ":memory:".
type SQLiteConfig struct {
	Path string `yaml:"path"`
	// Pragmas are applied on every new connection, e.g. "foreign_keys(1)".
	Pragmas []string   `yaml:"pragmas,omitempty"`
	Pool    PoolConfig `yaml:"pool,omitempty"`
}

// PoolConfig defines connection pool settings. Zero values keep the
// driver defaults.
type PoolConfig struct {
	MaxOpen     int           `yaml:"max_open,omitempty"`
	MaxIdle     int           `yaml:"max_idle,omitempty"`
	MaxLifetime time.Duration `yaml:"max_lifetime,omitempty"`
	MaxIdleTime time.Duration `yaml:"max_idle_time,omitempty"`
}

// Load reads and parses a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, rejecting unknown keys, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can be opened.
func (c *Config) Validate() error {
	if c.Postgres == nil && c.MySQL == nil && c.SQLite == nil {
		return fmt.Errorf("config: no database configured")
	}
	if p := c.Postgres; p != nil {
		if p.URL == "" && (p.Host == "" || p.Database == "") {
			return fmt.Errorf("config: postgres requires url, or host and database")
		}
		if err := validatePort(p.Port); err != nil {
			return fmt.Errorf("config: postgres: %w", err)
		}
	}
	if m := c.MySQL; m != nil {
		if m.Host == "" || m.Database == "" {
			return fmt.Errorf("config: mysql requires host and database")
		}
		if err := validatePort(m.Port); err != nil {
			return fmt.Errorf("config: mysql: %w", err)
		}
	}
	if s := c.SQLite; s != nil && s.Path == "" {
		return fmt.Errorf("config: sqlite requires path")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func validatePort(port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	return nil
}

// Level returns the configured log level, slog.LevelInfo when unset.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// ConnString returns the pgx connection string.
func (p *PostgresConfig) ConnString() string {
	if p.URL != "" {
		return p.URL
	}

	u := url.URL{Scheme: "postgres", Host: p.Host, Path: "/" + p.Database}
	if p.Port > 0 {
		u.Host = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	}
	if p.Username != "" {
		if p.Password != "" {
			u.User = url.UserPassword(p.Username, p.Password)
		} else {
			u.User = url.User(p.Username)
		}
	}

	q := url.Values{}
	if p.SSLMode != "" {
		q.Set("sslmode", p.SSLMode)
	}
	for k, v := range p.Params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// DSN returns the go-sql-driver/mysql data source name.
func (m *MySQLConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = m.Username
	cfg.Passwd = m.Password
	cfg.Net = "tcp"
	cfg.Addr = m.Host
	if m.Port > 0 {
		cfg.Addr = net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
	}
	cfg.DBName = m.Database
	cfg.ParseTime = true
	if len(m.Params) > 0 {
		cfg.Params = make(map[string]string, len(m.Params))
		for k, v := range m.Params {
			cfg.Params[k] = v
		}
	}
	return cfg.FormatDSN()
}

// DSN returns the modernc.org/sqlite data source name.
func (s *SQLiteConfig) DSN() string {
	if len(s.Pragmas) == 0 {
		return s.Path
	}
	q := make([]string, len(s.Pragmas))
	for i, p := range s.Pragmas {
		q[i] = "_pragma=" + url.QueryEscape(p)
	}
	return "file:" + s.Path + "?" + strings.Join(q, "&")
}
