package storage

import (
	"context"
	"sync"
)

// MemoryTokenStorage is a process-local TokenStorage for tests and for
// sessions that must not outlive the process.
type MemoryTokenStorage struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStorage(token string) *MemoryTokenStorage {
	return &MemoryTokenStorage{token: token}
}

func (m *MemoryTokenStorage) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenStorage) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStorage) Remove(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
