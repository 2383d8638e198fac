package counter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/footsteps/internal/common"
	"github.com/dmitrijs2005/footsteps/internal/dbx"
)

// SQLRepository keeps the counter in the electricity table. The queries use
// only syntax shared by PostgreSQL and SQLite.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func storageError(err error) error {
	return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
}

func (r *SQLRepository) Initialize(ctx context.Context) (bool, error) {
	seeded := false

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var count int64
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM electricity`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		// a concurrent startup may have inserted the row after our count
		res, err := tx.ExecContext(ctx,
			`INSERT INTO electricity (id, value)
			 VALUES (1, 0)
			 ON CONFLICT (id) DO NOTHING
			 `)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		seeded = n > 0
		return nil
	})
	if err != nil {
		return false, storageError(err)
	}

	return seeded, nil
}

func (r *SQLRepository) Get(ctx context.Context) (int64, error) {
	query :=
		`SELECT value FROM electricity
		 WHERE id = 1
		 `

	var value int64
	err := r.db.QueryRowContext(ctx, query).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, storageError(err)
	}

	return value, nil
}

func (r *SQLRepository) Increment(ctx context.Context) (int64, error) {
	query :=
		`UPDATE electricity SET value = value + 1
		 WHERE id = 1
		 RETURNING value
		 `

	var value int64
	err := r.db.QueryRowContext(ctx, query).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotInitialized
		}
		return 0, storageError(err)
	}

	return value, nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return storageError(err)
	}
	return nil
}
