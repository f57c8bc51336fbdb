package dataset

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("read after write", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.Write(ctx, "ws", "a/b", []byte("payload")); err != nil {
			t.Fatal(err)
		}
		data, err := store.Read(ctx, "ws", "a/b")
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "payload" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("read missing", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Read(ctx, "ws", "nope")
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsNotFound(err) {
			t.Errorf("IsNotFound = false for %v", err)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		store := NewMemoryStore()
		store.Write(ctx, "ws", "p", []byte("abc"))
		data, _ := store.Read(ctx, "ws", "p")
		data[0] = 'X'
		again, _ := store.Read(ctx, "ws", "p")
		if string(again) != "abc" {
			t.Error("mutating the returned slice leaked into the store")
		}
	})

	t.Run("delete", func(t *testing.T) {
		store := NewMemoryStore()
		store.Write(ctx, "ws", "p", []byte("x"))
		if err := store.Delete(ctx, "ws", "p"); err != nil {
			t.Fatal(err)
		}
		if _, err := store.Read(ctx, "ws", "p"); !IsNotFound(err) {
			t.Error("dataset should be gone")
		}
		// Deleting again is not an error.
		if err := store.Delete(ctx, "ws", "p"); err != nil {
			t.Errorf("second delete: %v", err)
		}
	})

	t.Run("hashes", func(t *testing.T) {
		store := NewMemoryStore()
		store.Write(ctx, "ws", "a", []byte("one"))
		store.Write(ctx, "ws", "b", []byte("two"))
		store.Write(ctx, "other", "c", []byte("three"))

		hashes, err := store.Hashes(ctx, "ws")
		if err != nil {
			t.Fatal(err)
		}
		if len(hashes) != 2 {
			t.Fatalf("hashes = %v, want 2 entries", hashes)
		}
		if hashes["a"] != ContentHash([]byte("one")) {
			t.Error("hash mismatch for a")
		}
	})

	t.Run("closed", func(t *testing.T) {
		store := NewMemoryStore()
		store.Close()
		if _, err := store.Read(ctx, "ws", "p"); err == nil {
			t.Error("read on closed store should fail")
		}
		if err := store.Write(ctx, "ws", "p", nil); err == nil {
			t.Error("write on closed store should fail")
		}
	})
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("same"))
	b := ContentHash([]byte("same"))
	c := ContentHash([]byte("different"))
	if a != b {
		t.Error("equal content should hash equal")
	}
	if a == c {
		t.Error("different content should hash different")
	}
}
