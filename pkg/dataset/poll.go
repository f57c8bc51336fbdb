package dataset

import (
	"context"
	"time"
)

// poller polls one workspace's dataset hashes on a shared timer.
type poller struct {
	cache     *Cache
	workspace string
	interval  time.Duration
	paths     map[string]bool
	ticker    *time.Ticker
	done      chan struct{}
}

// SetRefetchInterval subscribes a path to hash polling. All polled paths of
// a workspace share one timer; when requested intervals differ, the shorter
// wins. An interval of zero or less removes the path and stops the
// workspace's timer once no polled paths remain.
func (c *Cache) SetRefetchInterval(workspace, path string, interval time.Duration) {
	c.pollMu.Lock()
	defer c.pollMu.Unlock()

	if c.closed {
		return
	}

	p, ok := c.pollers[workspace]

	if interval <= 0 {
		if !ok {
			return
		}
		delete(p.paths, path)
		if len(p.paths) == 0 {
			p.stop()
			delete(c.pollers, workspace)
		}
		return
	}

	if !ok {
		p = &poller{
			cache:     c,
			workspace: workspace,
			interval:  interval,
			paths:     make(map[string]bool),
			ticker:    time.NewTicker(interval),
			done:      make(chan struct{}),
		}
		c.pollers[workspace] = p
		go p.run()
	}

	p.paths[path] = true
	if interval < p.interval {
		p.interval = interval
		p.ticker.Reset(interval)
	}
}

// stop halts the poller. Caller must hold the cache's pollMu.
func (p *poller) stop() {
	p.ticker.Stop()
	close(p.done)
}

func (p *poller) run() {
	for {
		select {
		case <-p.done:
			return
		case <-p.ticker.C:
			p.cache.pollWorkspace(p.workspace)
		}
	}
}

// pollWorkspace runs one poll cycle: compare remote hashes against known
// ones, re-fetch content only for changed paths, and clear entries for
// paths that became unset. All resulting changes coalesce into one batch.
func (c *Cache) pollWorkspace(workspace string) {
	c.pollMu.Lock()
	p, ok := c.pollers[workspace]
	if !ok {
		c.pollMu.Unlock()
		return
	}
	paths := make([]string, 0, len(p.paths))
	for path := range p.paths {
		paths = append(paths, path)
	}
	c.pollMu.Unlock()

	if c.metrics != nil {
		c.metrics.polls.Inc()
	}

	ctx := context.Background()
	hashes, err := c.store.Hashes(ctx, workspace)
	if err != nil {
		if c.metrics != nil {
			c.metrics.pollErrors.Inc()
		}
		return
	}

	c.Batch(func() {
		for _, path := range paths {
			key := Key{workspace, path}
			remote, exists := hashes[path]

			c.mu.Lock()
			e, cached := c.entries[key]
			c.mu.Unlock()

			switch {
			case !exists:
				// Dataset became unset.
				if cached {
					c.mu.Lock()
					delete(c.entries, key)
					c.mu.Unlock()
					c.markChanged(key, true)
				}

			case !cached || e.hash != remote:
				data, err := c.store.Read(ctx, workspace, path)
				if err != nil {
					if c.metrics != nil {
						c.metrics.pollErrors.Inc()
					}
					continue
				}
				if c.metrics != nil {
					c.metrics.fetches.Inc()
				}
				c.mu.Lock()
				c.entries[key] = &entry{data: data, hash: remote}
				c.mu.Unlock()
				c.markChanged(key, false)
			}
		}
	})
}
