package counter

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/footsteps/internal/common"
)

// InMemoryRepository is a process-local Repository guarded by a mutex.
// Fail makes every following call return the given error, which lets tests
// simulate an unreachable database.
type InMemoryRepository struct {
	mu          sync.Mutex
	initialized bool
	value       int64
	err         error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Fail sets the error returned by all operations; nil restores normal behaviour.
func (r *InMemoryRepository) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *InMemoryRepository) failure() error {
	if r.err == nil {
		return nil
	}
	return storageError(r.err)
}

func (r *InMemoryRepository) Initialize(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure(); err != nil {
		return false, err
	}
	if r.initialized {
		return false, nil
	}
	r.initialized = true
	return true, nil
}

func (r *InMemoryRepository) Get(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure(); err != nil {
		return 0, err
	}
	return r.value, nil
}

func (r *InMemoryRepository) Increment(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure(); err != nil {
		return 0, err
	}
	if !r.initialized {
		return 0, common.ErrorNotInitialized
	}
	r.value++
	return r.value, nil
}

func (r *InMemoryRepository) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure()
}
