// ABOUTME: SQLite cache implementation for single-node deployments that survive restarts
// ABOUTME: Stores entries in a key/value table with expiry timestamps and periodic cleanup

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is returned when a key is not present or has expired
var ErrCacheMiss = errors.New("cache: key not found")

const schema = `
CREATE TABLE IF NOT EXISTS cache_entries (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cache_expires ON cache_entries(expires_at);
`

const cleanupInterval = 10 * time.Minute

// SQLiteCache implements the Cache interface on a local SQLite database
type SQLiteCache struct {
	db   *sql.DB
	done chan struct{}
}

// NewSQLiteCache opens (or creates) the database at path and starts a
// background sweep of expired entries
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if path == "" {
		return nil, errors.New("sqlite cache path cannot be empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	c := &SQLiteCache{db: db, done: make(chan struct{})}
	go c.cleanupLoop()
	return c, nil
}

// Get retrieves a value, treating expired rows as misses
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64

	row := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM cache_entries WHERE key = ?", key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	if expiresAt > 0 && time.Now().Unix() >= expiresAt {
		_, _ = c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key)
		return nil, ErrCacheMiss
	}

	return value, nil
}

// Set stores a value with the given TTL. A zero TTL stores the entry
// without expiration.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt)
	return err
}

// Delete removes a key. Deleting an absent key is not an error.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key)
	return err
}

// Close stops the cleanup loop and closes the database
func (c *SQLiteCache) Close() error {
	close(c.done)
	return c.db.Close()
}

// cleanupLoop sweeps expired rows until Close is called
func (c *SQLiteCache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = c.db.Exec("DELETE FROM cache_entries WHERE expires_at > 0 AND expires_at <= ?",
				time.Now().Unix())
		case <-c.done:
			return
		}
	}
}
