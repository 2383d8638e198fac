// Package repomanager opens the configured database, applies the embedded
// goose migrations and vends the counter repository.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/footsteps/internal/server/migrations"
	"github.com/dmitrijs2005/footsteps/internal/server/repositories/counter"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager owns the *sql.DB pool shared by all requests.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect string
	counter *counter.SQLRepository
}

func (m *SQLRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLRepositoryManager) Counter() counter.Repository {
	return m.counter
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations using the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func NewSQLRepositoryManager(ctx context.Context, b backend, opts Options) (*SQLRepositoryManager, error) {
	db, err := sql.Open(b.driver, b.source)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	configurePool(db, b, opts)

	if opts.Logger != nil {
		goose.SetLogger(&gooseLogger{l: opts.Logger.With("module", "goose")})
	}

	m := &SQLRepositoryManager{
		db:      db,
		dialect: b.dialect,
		counter: counter.NewSQLRepository(db),
	}

	pingCtx := ctx
	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}

	if err := m.counter.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func configurePool(db *sql.DB, b backend, opts Options) {
	if b.driver == "sqlite" {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	} else if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}

	if opts.IdleTimeout > 0 {
		db.SetConnMaxIdleTime(opts.IdleTimeout)
	}
}
