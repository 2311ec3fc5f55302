package db

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type DBConfig struct {
	Type Dialect
	Path string // sqlite file path (or ":memory:")
	DSN  string // postgres connection string
}

// Store wraps the dashboard database. SQLite is the default backend,
// Postgres is supported for multi-instance deployments.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func NewStore(cfg DBConfig) (*Store, error) {
	if cfg.Type == "" {
		cfg.Type = DialectSQLite
	}

	var (
		db  *sql.DB
		err error
	)
	switch cfg.Type {
	case DialectSQLite:
		db, err = sql.Open("sqlite3", cfg.Path)
	case DialectPostgres:
		db, err = sql.Open("postgres", cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported db type %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Type == DialectSQLite {
		// Cascade deletes rely on foreign keys being on
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	s := &Store{db: db, dialect: cfg.Type}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	goose.SetBaseFS(migrations)
	dialect := "sqlite3"
	if s.dialect == DialectPostgres {
		dialect = "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(s.db, "migrations")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable. Used by the readiness probe.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// rebind rewrites ? placeholders to $1, $2, ... for Postgres. Queries are
// written in the SQLite form throughout the package.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DBSize returns the on-disk size of the database in bytes.
func (s *Store) DBSize() (int64, error) {
	if s.dialect == DialectPostgres {
		var size int64
		err := s.db.QueryRow("SELECT pg_database_size(current_database())").Scan(&size)
		return size, err
	}

	// PRAGMA page_count * PRAGMA page_size
	var pageCount int64
	var pageSize int64
	if err := s.db.QueryRow("PRAGMA page_count").Scan(&pageCount); err != nil {
		return 0, err
	}
	if err := s.db.QueryRow("PRAGMA page_size").Scan(&pageSize); err != nil {
		return 0, err
	}
	return pageCount * pageSize, nil
}
