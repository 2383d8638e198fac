package repomanager

import (
	"context"

	"github.com/dmitrijs2005/footsteps/internal/server/repositories/counter"
)

// InMemoryRepositoryManager backs the memory:// DSN. State lives only as long
// as the process.
type InMemoryRepositoryManager struct {
	counter *counter.InMemoryRepository
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Counter() counter.Repository {
	return m.counter
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{counter: counter.NewInMemoryRepository()}
}
