package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

const (
	DriverSqlite   = "sqlite"
	DriverLibsql   = "libsql"
	DriverPostgres = "postgres"
)

type Config struct {
	// Driver is one of sqlite, libsql or postgres, it defaults to sqlite.
	Driver    string `json:"driver"`
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
	// ViaBouncer switches pgx to the simple protocol for pgbouncer in transaction mode.
	ViaBouncer bool `json:"via_bouncer"`
}

func openSqlite(file string) (*sql.DB, error) {
	if file == "" {
		return nil, fmt.Errorf("a path was not specified")
	}
	if file != ":memory:" {
		err := os.MkdirAll(filepath.Dir(file), 0755)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, err
	}
	// sqlite only allows a single writer, see
	// https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	_, err = db.Exec("PRAGMA busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	return db, nil
}

func openLibsql(config Config) (*sql.DB, error) {
	if config.Url == "" {
		if config.File == "" {
			return nil, fmt.Errorf("a path or url was not specified")
		}
		return sql.Open("libsql", fmt.Sprintf("file:%s", config.File))
	}

	values := url.Values{}
	if config.AuthToken != "" {
		values.Add("authToken", config.AuthToken)
	}
	return sql.Open("libsql", config.Url+"?"+values.Encode())
}

func openPostgres(config Config) (*sql.DB, error) {
	if config.Url == "" {
		return nil, fmt.Errorf("a postgres dsn was not specified")
	}
	cfg, err := pgx.ParseConfig(config.Url)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if config.ViaBouncer {
		cfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	return stdlib.OpenDB(*cfg), nil
}

// OpenDB opens the configured database and returns the dialect to talk to it with.
func (config Config) OpenDB() (*sql.DB, Dialect, error) {
	switch config.Driver {
	case "", DriverSqlite:
		db, err := openSqlite(config.File)
		return db, SqliteDialect{}, err
	case DriverLibsql:
		db, err := openLibsql(config)
		return db, SqliteDialect{}, err
	case DriverPostgres:
		db, err := openPostgres(config)
		return db, PostgresDialect{}, err
	}
	return nil, nil, fmt.Errorf("unknown database driver '%s'", config.Driver)
}

// Open opens the database and wraps it in a SQLStore.
func (config Config) Open(ctx context.Context) (SQLStore, *sql.DB, error) {
	db, dialect, err := config.OpenDB()
	if err != nil {
		return SQLStore{}, nil, err
	}
	s, err := NewSQLStore(ctx, db, dialect)
	if err != nil {
		db.Close()
		return SQLStore{}, nil, err
	}
	return s, db, nil
}

// OpenMemory opens a private in-memory sqlite store.
func OpenMemory(ctx context.Context) (SQLStore, error) {
	db, err := openSqlite(":memory:")
	if err != nil {
		return SQLStore{}, err
	}
	return NewSQLStore(ctx, db, SqliteDialect{})
}
