// Package counter stores the single electricity counter. The SQL
// implementation relies on the database to apply increments atomically; the
// in-memory one is used for tests and for running without a database.
// The counter always lives in the row with id 1.
package counter

import "context"

type Repository interface {
	// Initialize seeds the counter row with 0 when the table is empty and
	// reports whether it did. Safe to call on every startup.
	Initialize(ctx context.Context) (bool, error)
	// Get returns the stored value, or 0 when the row is missing.
	Get(ctx context.Context) (int64, error)
	// Increment adds one to the stored value and returns the new value.
	Increment(ctx context.Context) (int64, error)
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
