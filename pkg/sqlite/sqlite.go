package sqlite

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const DriverName = "sqlite"

type Config struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"quadras.db"`
}

// DSN enables foreign keys and a busy timeout on every connection.
func (c Config) DSN() string {
	path := c.Path
	if path == "" || path == ":memory:" {
		path = ":memory:"
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// NewSQLiteDB opens the database file, applies the embedded goose migrations and returns it.
// SQLite serialises writers, so the pool is pinned to a single connection; this also keeps
// an in-memory database alive for the lifetime of the handle.
func NewSQLiteDB(ctx context.Context, cfg Config, migrationFiles embed.FS) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Open")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping")
	}

	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return db, nil
}
