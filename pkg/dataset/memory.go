package dataset

import (
	"context"
	"sync"

	"github.com/elaraai/east-ui-sub007/internal/errors"
)

// MemoryStore is an in-memory dataset store.
// It's the default store and suitable for tests and single-process use.
type MemoryStore struct {
	mu         sync.RWMutex
	workspaces map[string]map[string][]byte
	closed     bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		workspaces: make(map[string]map[string][]byte),
	}
}

// Read returns a copy of the dataset content.
func (m *MemoryStore) Read(ctx context.Context, workspace, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, errors.New("E303")
	}
	data, ok := m.workspaces[workspace][path]
	if !ok {
		return nil, errors.New("E301").WithDetail(workspace + "/" + path)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of the dataset content.
func (m *MemoryStore) Write(ctx context.Context, workspace, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.New("E303")
	}
	ws, ok := m.workspaces[workspace]
	if !ok {
		ws = make(map[string][]byte)
		m.workspaces[workspace] = ws
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	ws[path] = copied
	return nil
}

// Delete removes a dataset. Missing datasets are ignored.
func (m *MemoryStore) Delete(ctx context.Context, workspace, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.New("E303")
	}
	delete(m.workspaces[workspace], path)
	return nil
}

// Hashes returns the content hash of every dataset in the workspace.
func (m *MemoryStore) Hashes(ctx context.Context, workspace string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, errors.New("E303")
	}
	out := make(map[string]string, len(m.workspaces[workspace]))
	for path, data := range m.workspaces[workspace] {
		out[path] = ContentHash(data)
	}
	return out, nil
}

// Close marks the store closed. Later operations fail with E303.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
