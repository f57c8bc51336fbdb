package dataset

import (
	"context"
	"sync"
)

// Event describes one flushed dataset change.
type Event struct {
	Workspace string
	Path      string

	// Version is the key's monotonic change counter.
	Version uint64

	// GlobalVersion is the cache-wide flush counter.
	GlobalVersion uint64

	// Unset is true when the dataset was removed.
	Unset bool
}

// entry is one cached dataset value.
type entry struct {
	data []byte
	hash string
}

// flight is one in-progress preload shared by concurrent callers.
type flight struct {
	done chan struct{}
	data []byte
	err  error
}

// Cache is the reactive dataset cache.
// All methods are safe for concurrent use.
type Cache struct {
	store   Store
	queries *QueryCache
	sched   Scheduler
	metrics *Metrics

	mu       sync.Mutex
	entries  map[Key]*entry
	versions map[Key]uint64
	inflight map[Key]*flight

	subMu      sync.Mutex
	subs       map[Key]map[uint64]func(Event)
	globalSubs map[uint64]func(Event)
	nextSub    uint64

	globalVersion uint64

	batchMu        sync.Mutex
	batchDepth     int
	pending        map[Key]bool
	flushScheduled bool

	pollMu  sync.Mutex
	pollers map[string]*poller
	closed  bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithScheduler sets the scheduler used to defer notification flushes that
// happen outside a batch. Default: each flush runs on its own goroutine.
func WithScheduler(s Scheduler) CacheOption {
	return func(c *Cache) {
		c.sched = s
	}
}

// WithMetrics attaches Prometheus metrics to the cache.
func WithMetrics(m *Metrics) CacheOption {
	return func(c *Cache) {
		c.metrics = m
	}
}

// NewCache creates a cache over the given store.
func NewCache(store Store, opts ...CacheOption) *Cache {
	c := &Cache{
		store:      store,
		queries:    NewQueryCache(),
		sched:      GoScheduler{},
		entries:    make(map[Key]*entry),
		versions:   make(map[Key]uint64),
		inflight:   make(map[Key]*flight),
		subs:       make(map[Key]map[uint64]func(Event)),
		globalSubs: make(map[uint64]func(Event)),
		pending:    make(map[Key]bool),
		pollers:    make(map[string]*poller),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Queries returns the cache's derived-query cache.
// Entries for a workspace are invalidated on every write to it.
func (c *Cache) Queries() *QueryCache {
	return c.queries
}

// Get returns the cached content for a key, if present.
// The returned slice is a copy.
func (c *Cache) Get(workspace, path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[Key{workspace, path}]
	if !ok {
		if c.metrics != nil {
			c.metrics.misses.Inc()
		}
		return nil, false
	}
	if c.metrics != nil {
		c.metrics.hits.Inc()
	}
	out := make([]byte, len(e.data))
	copy(out, e.data)
	return out, true
}

// Version returns the key's monotonic change counter.
func (c *Cache) Version(workspace, path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[Key{workspace, path}]
}

// GlobalVersion returns the cache-wide flush counter.
func (c *Cache) GlobalVersion() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalVersion
}

// Write performs an optimistic write: the cache entry is updated first,
// the workspace's query cache is invalidated, then the remote write is
// issued. On remote failure the previous value and hash are restored and
// the error is returned. Subscribers observe the optimistic change and, on
// failure, the rollback.
func (c *Cache) Write(ctx context.Context, workspace, path string, data []byte) error {
	key := Key{workspace, path}

	copied := make([]byte, len(data))
	copy(copied, data)

	c.mu.Lock()
	prev := c.entries[key]
	c.entries[key] = &entry{data: copied, hash: ContentHash(copied)}
	c.mu.Unlock()

	c.queries.InvalidateWorkspace(workspace)
	c.markChanged(key, false)

	if err := c.store.Write(ctx, workspace, path, data); err != nil {
		c.mu.Lock()
		if prev != nil {
			c.entries[key] = prev
		} else {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		c.queries.InvalidateWorkspace(workspace)
		c.markChanged(key, prev == nil)
		if c.metrics != nil {
			c.metrics.rollbacks.Inc()
		}
		return err
	}
	return nil
}

// Preload fetches a dataset into the cache unless already present.
// Concurrent preloads of the same key share a single in-flight fetch; every
// caller receives the same result. The returned slice is a copy.
func (c *Cache) Preload(ctx context.Context, workspace, path string) ([]byte, error) {
	key := Key{workspace, path}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.metrics != nil {
			c.metrics.hits.Inc()
		}
		out := make([]byte, len(e.data))
		copy(out, e.data)
		c.mu.Unlock()
		return out, nil
	}
	if f, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.flightsMerged.Inc()
		}
		<-f.done
		if f.err != nil {
			return nil, f.err
		}
		out := make([]byte, len(f.data))
		copy(out, f.data)
		return out, nil
	}
	f := &flight{done: make(chan struct{})}
	c.inflight[key] = f
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.fetches.Inc()
	}
	data, err := c.store.Read(ctx, workspace, path)

	c.mu.Lock()
	delete(c.inflight, key)
	if err == nil {
		// The entry keeps its own copy so callers may mutate the slice
		// they got back without disturbing the cached bytes or the hash
		// the pollers compare against.
		stored := make([]byte, len(data))
		copy(stored, data)
		c.entries[key] = &entry{data: stored, hash: ContentHash(stored)}
	}
	c.mu.Unlock()

	f.data, f.err = data, err
	close(f.done)

	if err == nil {
		c.markChanged(key, false)
	}
	return data, err
}

// Delete removes the dataset from the store and the cache.
// Subscribers observe an unset event.
func (c *Cache) Delete(ctx context.Context, workspace, path string) error {
	if err := c.store.Delete(ctx, workspace, path); err != nil {
		return err
	}

	key := Key{workspace, path}
	c.mu.Lock()
	_, had := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	c.queries.InvalidateWorkspace(workspace)
	if had {
		c.markChanged(key, true)
	}
	return nil
}

// Invalidate drops a cached entry without touching the remote store.
func (c *Cache) Invalidate(workspace, path string) {
	key := Key{workspace, path}

	c.mu.Lock()
	_, had := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if had {
		c.markChanged(key, true)
	}
}

// Subscribe registers a callback for one key's change events.
// The returned function removes the subscription.
func (c *Cache) Subscribe(workspace, path string, fn func(Event)) func() {
	key := Key{workspace, path}

	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	if c.subs[key] == nil {
		c.subs[key] = make(map[uint64]func(Event))
	}
	c.subs[key][id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs[key], id)
		if len(c.subs[key]) == 0 {
			delete(c.subs, key)
		}
	}
}

// SubscribeAll registers a callback for every change event.
func (c *Cache) SubscribeAll(fn func(Event)) func() {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.globalSubs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.globalSubs, id)
	}
}

// Close stops all pollers and closes the underlying store.
func (c *Cache) Close() error {
	c.pollMu.Lock()
	c.closed = true
	for workspace, p := range c.pollers {
		p.stop()
		delete(c.pollers, workspace)
	}
	c.pollMu.Unlock()
	return c.store.Close()
}
