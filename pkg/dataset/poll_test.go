package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// countingStore counts reads and hash listings and can fail listings.
type countingStore struct {
	*MemoryStore
	mu         sync.Mutex
	reads      int
	lists      int
	failHashes bool
}

func (s *countingStore) Read(ctx context.Context, workspace, path string) ([]byte, error) {
	s.mu.Lock()
	s.reads++
	s.mu.Unlock()
	return s.MemoryStore.Read(ctx, workspace, path)
}

func (s *countingStore) Hashes(ctx context.Context, workspace string) (map[string]string, error) {
	s.mu.Lock()
	s.lists++
	fail := s.failHashes
	s.mu.Unlock()
	if fail {
		return nil, errors.New("listing unavailable")
	}
	return s.MemoryStore.Hashes(ctx, workspace)
}

func (s *countingStore) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func TestPollWorkspace(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches changed content only", func(t *testing.T) {
		store := &countingStore{MemoryStore: NewMemoryStore()}
		if err := store.Write(ctx, "ws", "sales.ds", []byte("v1")); err != nil {
			t.Fatal(err)
		}

		cache := NewCache(store, WithScheduler(SyncScheduler{}))
		defer cache.Close()

		var events []Event
		cache.SubscribeAll(func(e Event) { events = append(events, e) })

		// A long interval registers the path without the timer interfering.
		cache.SetRefetchInterval("ws", "sales.ds", time.Hour)

		cache.pollWorkspace("ws")
		if got, ok := cache.Get("ws", "sales.ds"); !ok || string(got) != "v1" {
			t.Fatalf("after first poll: got %q ok=%v, want v1", got, ok)
		}
		if len(events) != 1 || events[0].Unset {
			t.Fatalf("after first poll: events = %+v, want one set event", events)
		}

		// Unchanged hash: no re-fetch, no event.
		before := store.readCount()
		cache.pollWorkspace("ws")
		if store.readCount() != before {
			t.Fatalf("poll re-fetched unchanged content: %d reads", store.readCount()-before)
		}
		if len(events) != 1 {
			t.Fatalf("unchanged poll emitted events: %+v", events)
		}

		// Remote change behind the cache's back.
		if err := store.MemoryStore.Write(ctx, "ws", "sales.ds", []byte("v2")); err != nil {
			t.Fatal(err)
		}
		cache.pollWorkspace("ws")
		if got, _ := cache.Get("ws", "sales.ds"); string(got) != "v2" {
			t.Fatalf("after change poll: got %q, want v2", got)
		}
		if len(events) != 2 {
			t.Fatalf("change poll events = %+v, want 2", events)
		}
	})

	t.Run("clears entries for unset datasets", func(t *testing.T) {
		store := &countingStore{MemoryStore: NewMemoryStore()}
		if err := store.Write(ctx, "ws", "sales.ds", []byte("v1")); err != nil {
			t.Fatal(err)
		}

		cache := NewCache(store, WithScheduler(SyncScheduler{}))
		defer cache.Close()
		cache.SetRefetchInterval("ws", "sales.ds", time.Hour)
		cache.pollWorkspace("ws")

		var events []Event
		cache.SubscribeAll(func(e Event) { events = append(events, e) })

		if err := store.Delete(ctx, "ws", "sales.ds"); err != nil {
			t.Fatal(err)
		}
		cache.pollWorkspace("ws")

		if _, ok := cache.Get("ws", "sales.ds"); ok {
			t.Fatal("entry survived an unset poll")
		}
		if len(events) != 1 || !events[0].Unset {
			t.Fatalf("events = %+v, want one unset event", events)
		}

		// Already gone: a second poll stays quiet.
		cache.pollWorkspace("ws")
		if len(events) != 1 {
			t.Fatalf("repeated unset poll emitted events: %+v", events)
		}
	})

	t.Run("tolerates listing failure", func(t *testing.T) {
		store := &countingStore{MemoryStore: NewMemoryStore()}
		if err := store.Write(ctx, "ws", "sales.ds", []byte("v1")); err != nil {
			t.Fatal(err)
		}

		cache := NewCache(store, WithScheduler(SyncScheduler{}))
		defer cache.Close()
		cache.SetRefetchInterval("ws", "sales.ds", time.Hour)
		cache.pollWorkspace("ws")

		var events []Event
		cache.SubscribeAll(func(e Event) { events = append(events, e) })

		store.mu.Lock()
		store.failHashes = true
		store.mu.Unlock()

		cache.pollWorkspace("ws")
		if got, _ := cache.Get("ws", "sales.ds"); string(got) != "v1" {
			t.Fatalf("failed listing disturbed the entry: %q", got)
		}
		if len(events) != 0 {
			t.Fatalf("failed listing emitted events: %+v", events)
		}
	})
}

func TestSetRefetchInterval(t *testing.T) {
	ctx := context.Background()

	t.Run("timer drives polling", func(t *testing.T) {
		store := &countingStore{MemoryStore: NewMemoryStore()}
		if err := store.Write(ctx, "ws", "sales.ds", []byte("v1")); err != nil {
			t.Fatal(err)
		}

		cache := NewCache(store, WithScheduler(SyncScheduler{}))
		defer cache.Close()

		got := make(chan Event, 1)
		cache.Subscribe("ws", "sales.ds", func(e Event) {
			select {
			case got <- e:
			default:
			}
		})

		cache.SetRefetchInterval("ws", "sales.ds", 10*time.Millisecond)

		select {
		case e := <-got:
			if e.Unset {
				t.Fatalf("unexpected unset event: %+v", e)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timer never triggered a poll")
		}
	})

	t.Run("shorter interval wins for a shared workspace", func(t *testing.T) {
		store := &countingStore{MemoryStore: NewMemoryStore()}
		if err := store.Write(ctx, "ws", "slow.ds", []byte("a")); err != nil {
			t.Fatal(err)
		}
		if err := store.Write(ctx, "ws", "fast.ds", []byte("b")); err != nil {
			t.Fatal(err)
		}

		cache := NewCache(store, WithScheduler(SyncScheduler{}))
		defer cache.Close()

		got := make(chan Event, 1)
		cache.Subscribe("ws", "slow.ds", func(e Event) {
			select {
			case got <- e:
			default:
			}
		})

		cache.SetRefetchInterval("ws", "slow.ds", time.Hour)
		cache.SetRefetchInterval("ws", "fast.ds", 10*time.Millisecond)

		// The slow path rides the shared timer at the faster cadence.
		select {
		case <-got:
		case <-time.After(2 * time.Second):
			t.Fatal("shared timer never polled at the shorter interval")
		}
	})

	t.Run("removing the last path stops the poller", func(t *testing.T) {
		store := NewMemoryStore()
		cache := NewCache(store, WithScheduler(SyncScheduler{}))
		defer cache.Close()

		cache.SetRefetchInterval("ws", "a.ds", time.Hour)
		cache.SetRefetchInterval("ws", "b.ds", time.Hour)

		cache.SetRefetchInterval("ws", "a.ds", 0)
		cache.pollMu.Lock()
		_, alive := cache.pollers["ws"]
		cache.pollMu.Unlock()
		if !alive {
			t.Fatal("poller stopped while a path remained")
		}

		cache.SetRefetchInterval("ws", "b.ds", 0)
		cache.pollMu.Lock()
		_, alive = cache.pollers["ws"]
		cache.pollMu.Unlock()
		if alive {
			t.Fatal("poller survived removal of its last path")
		}

		// Removing from an unknown workspace is a no-op.
		cache.SetRefetchInterval("other", "x.ds", -1)
	})

	t.Run("closed cache refuses new pollers", func(t *testing.T) {
		cache := NewCache(NewMemoryStore(), WithScheduler(SyncScheduler{}))
		if err := cache.Close(); err != nil {
			t.Fatal(err)
		}

		cache.SetRefetchInterval("ws", "a.ds", time.Hour)
		cache.pollMu.Lock()
		n := len(cache.pollers)
		cache.pollMu.Unlock()
		if n != 0 {
			t.Fatalf("closed cache started %d pollers", n)
		}
	})
}
