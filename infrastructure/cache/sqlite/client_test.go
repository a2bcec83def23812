package sqlite

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()

	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestSQLiteCache_Miss(t *testing.T) {
	cache := newTestCache(t)

	if _, err := cache.Get(context.Background(), "absent"); err != ErrCacheMiss {
		t.Errorf("Get on absent key = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("old"), time.Minute)
	cache.Set(ctx, "key", []byte("new"), time.Minute)

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Get = %q, want overwritten value", got)
	}
}

func TestSQLiteCache_ExpiredEntryMisses(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Second)

	// Force the entry into the past instead of sleeping
	if _, err := cache.db.Exec("UPDATE cache_entries SET expires_at = 1 WHERE key = 'key'"); err != nil {
		t.Fatalf("backdating entry: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("expired key should miss, got %v", err)
	}
}

func TestSQLiteCache_ZeroTTLPersists(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), 0)

	if _, err := cache.Get(ctx, "key"); err != nil {
		t.Errorf("zero-TTL entry should not expire, got %v", err)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "key"); err != ErrCacheMiss {
		t.Error("deleted key should miss")
	}

	if err := cache.Delete(ctx, "absent"); err != nil {
		t.Errorf("deleting an absent key should not error, got %v", err)
	}
}

func TestNewSQLiteCache_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteCache(""); err == nil {
		t.Error("NewSQLiteCache should reject an empty path")
	}
}
