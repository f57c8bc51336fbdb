package dataset

import "sync"

// QueryCache memoizes values derived from a workspace's datasets, keyed by
// an arbitrary query string. It exists so renderers can cache expensive
// projections; every write to a workspace invalidates its queries.
type QueryCache struct {
	mu      sync.RWMutex
	results map[string]map[string][]byte
}

// NewQueryCache creates an empty query cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{results: make(map[string]map[string][]byte)}
}

// Get returns the cached result for a workspace query.
func (q *QueryCache) Get(workspace, query string) ([]byte, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	data, ok := q.results[workspace][query]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Set stores a query result.
func (q *QueryCache) Set(workspace, query string, data []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ws, ok := q.results[workspace]
	if !ok {
		ws = make(map[string][]byte)
		q.results[workspace] = ws
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	ws[query] = copied
}

// InvalidateWorkspace drops every cached query of the workspace.
func (q *QueryCache) InvalidateWorkspace(workspace string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.results, workspace)
}
