package counter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/footsteps/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_InitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	seeded, err := repo.Initialize(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	_, err = repo.Increment(ctx)
	require.NoError(t, err)

	seeded, err = repo.Initialize(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestInMemory_IncrementBeforeInitialize(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Increment(context.Background())
	require.ErrorIs(t, err, common.ErrorNotInitialized)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestInMemory_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Initialize(ctx)
	require.NoError(t, err)

	const n = 200
	results := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Increment(ctx)
			assert.NoError(t, err)
			results <- v
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, n)
	for v := range results {
		assert.False(t, seen[v], "duplicate value %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, n)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got)
}

func TestInMemory_Fail(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	_, err := repo.Initialize(ctx)
	require.NoError(t, err)

	repo.Fail(errors.New("connection refused"))

	_, err = repo.Get(ctx)
	require.ErrorIs(t, err, common.ErrorStorage)
	_, err = repo.Increment(ctx)
	require.ErrorIs(t, err, common.ErrorStorage)
	require.ErrorIs(t, repo.Ping(ctx), common.ErrorStorage)

	repo.Fail(nil)
	v, err := repo.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
