package repomanager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/footsteps/internal/logging"
	"github.com/dmitrijs2005/footsteps/internal/server/repositories/counter"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Counter() counter.Repository
	Close() error
}

// Options tunes the connection pool and startup checks.
type Options struct {
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
	MaxOpenConns   int
	Logger         logging.Logger
}

const (
	memoryScheme = "memory://"
	sqliteScheme = "sqlite://"
)

type backend struct {
	driver  string
	dialect string
	source  string
}

// parseDSN maps a DSN to a database/sql driver and goose dialect:
//
//	memory://                  in-process counter, no database
//	sqlite://path/to/file.db   modernc SQLite
//	file:..., *.db             modernc SQLite
//	anything else              PostgreSQL through pgx
func parseDSN(dsn string) (backend, error) {
	switch {
	case dsn == "":
		return backend{}, fmt.Errorf("empty database DSN")
	case dsn == "memory" || strings.HasPrefix(dsn, memoryScheme):
		return backend{driver: "memory"}, nil
	case strings.HasPrefix(dsn, sqliteScheme):
		return backend{driver: "sqlite", dialect: "sqlite3", source: strings.TrimPrefix(dsn, sqliteScheme)}, nil
	case strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db"):
		return backend{driver: "sqlite", dialect: "sqlite3", source: dsn}, nil
	default:
		return backend{driver: "pgx", dialect: "postgres", source: dsn}, nil
	}
}

// NewRepositoryManager opens the database behind dsn, verifies it answers
// within opts.ConnectTimeout and applies migrations. Any failure here means
// the server must not start.
func NewRepositoryManager(ctx context.Context, dsn string, opts Options) (RepositoryManager, error) {
	b, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}

	if b.driver == "memory" {
		return NewInMemoryRepositoryManager(), nil
	}

	return NewSQLRepositoryManager(ctx, b, opts)
}
