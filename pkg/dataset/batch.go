package dataset

// Scheduler defers a notification flush that happens outside a batch.
// Injected so tests and frameworks can control delivery timing.
type Scheduler interface {
	Schedule(fn func())
}

// GoScheduler runs each flush on its own goroutine.
type GoScheduler struct{}

// Schedule implements Scheduler.
func (GoScheduler) Schedule(fn func()) {
	go fn()
}

// SyncScheduler runs each flush immediately on the calling goroutine.
type SyncScheduler struct{}

// Schedule implements Scheduler.
func (SyncScheduler) Schedule(fn func()) {
	fn()
}

// Batch groups multiple cache mutations into a single notification phase.
// Changes within the batch function are collected and coalesced per key,
// and subscribers are notified once when the outermost batch completes.
//
// Example:
//
//	cache.Batch(func() {
//	    cache.Write(ctx, "plant", "inputs/demand", demand)
//	    cache.Write(ctx, "plant", "inputs/supply", supply)
//	})
//	// Subscribers see one flush with both keys
func (c *Cache) Batch(fn func()) {
	c.batchMu.Lock()
	c.batchDepth++
	c.batchMu.Unlock()

	defer func() {
		c.batchMu.Lock()
		c.batchDepth--
		flush := c.batchDepth == 0 && len(c.pending) > 0
		c.batchMu.Unlock()

		if flush {
			c.flush()
		}
	}()

	fn()
}

// markChanged records a change for the key. Inside a batch the flush waits
// for the outermost batch to complete; outside, one flush is scheduled per
// coalescing window.
func (c *Cache) markChanged(key Key, unset bool) {
	c.batchMu.Lock()
	c.pending[key] = unset

	if c.batchDepth > 0 {
		c.batchMu.Unlock()
		return
	}
	if c.flushScheduled {
		c.batchMu.Unlock()
		return
	}
	c.flushScheduled = true
	c.batchMu.Unlock()

	c.sched.Schedule(c.flush)
}

// flush drains pending changes and notifies subscribers.
// Each drained key's version is incremented once, as is the global version,
// no matter how many mutations coalesced into this flush.
func (c *Cache) flush() {
	c.batchMu.Lock()
	if len(c.pending) == 0 {
		c.flushScheduled = false
		c.batchMu.Unlock()
		return
	}
	drained := c.pending
	c.pending = make(map[Key]bool)
	c.flushScheduled = false
	c.batchMu.Unlock()

	c.mu.Lock()
	c.globalVersion++
	global := c.globalVersion
	events := make([]Event, 0, len(drained))
	for key, unset := range drained {
		c.versions[key]++
		events = append(events, Event{
			Workspace:     key.Workspace,
			Path:          key.Path,
			Version:       c.versions[key],
			GlobalVersion: global,
			Unset:         unset,
		})
	}
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.flushes.Inc()
		c.metrics.notifications.Add(float64(len(events)))
	}

	// Copy-before-notify so callbacks never run under a lock.
	for _, ev := range events {
		key := Key{ev.Workspace, ev.Path}

		c.subMu.Lock()
		fns := make([]func(Event), 0, len(c.subs[key])+len(c.globalSubs))
		for _, fn := range c.subs[key] {
			fns = append(fns, fn)
		}
		for _, fn := range c.globalSubs {
			fns = append(fns, fn)
		}
		c.subMu.Unlock()

		for _, fn := range fns {
			fn(ev)
		}
	}
}
